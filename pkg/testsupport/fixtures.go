// Package testsupport holds fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/model"
)

// RecordFixture is the on-disk shape of a bound object fixture.
type RecordFixture struct {
	Name     string              `json:"name"`
	Values   map[string]any      `json:"values"`
	Errors   map[string][]string `json:"errors"`
	Required []string            `json:"required"`
	Labels   map[string]string   `json:"labels"`
}

// Record builds a model.Record from the fixture.
func (f RecordFixture) Record() *model.Record {
	record := model.NewRecord(f.Name).SetValues(f.Values).Require(f.Required...)
	for field, messages := range f.Errors {
		for _, message := range messages {
			record.AddError(field, message)
		}
	}
	for field, label := range f.Labels {
		record.Label(field, label)
	}
	return record
}

// LoadRecord reads a JSON record fixture, returning an error for callers
// managing setup outside of *testing.T.
func LoadRecord(path string) (*model.Record, error) {
	if path == "" {
		return nil, errors.New("testsupport: record path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read record: %w", err)
	}
	var fixture RecordFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal record: %w", err)
	}
	return fixture.Record(), nil
}

// MustLoadRecord loads a record fixture or fails the test.
func MustLoadRecord(t *testing.T, path string) *model.Record {
	t.Helper()

	record, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	return record
}

// UpdateGoldensEnv rewrites golden files instead of comparing them when set.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// AssertGolden compares got with the golden file at path, ignoring
// surrounding whitespace. With UPDATE_GOLDENS set the file is rewritten
// instead.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()

	if os.Getenv(UpdateGoldensEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(strings.TrimSpace(got)+"\n"), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if diff := cmp.Diff(strings.TrimSpace(string(data)), strings.TrimSpace(got)); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", filepath.Base(path), diff)
	}
}
