package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	asked    []string
	err      error
}

func (s *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.asked = append(s.asked, cfg.Message+"="+cfg.Default)
	if s.err != nil {
		return "", s.err
	}
	value := s.inputs[0]
	s.inputs = s.inputs[1:]
	if value == "" {
		return cfg.Default, nil
	}
	return value, nil
}

func (s *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.asked = append(s.asked, cfg.Message)
	value := s.confirms[0]
	s.confirms = s.confirms[1:]
	return value, nil
}

func (s *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.asked = append(s.asked, cfg.Message)
	value := s.selects[0]
	s.selects = s.selects[1:]
	return value, nil
}

func TestAskFieldCollectsOptions(t *testing.T) {
	driver := &scriptedDriver{
		selects:  []int{0},
		inputs:   []string{"", "Keep it short", ""},
		confirms: []bool{true},
	}

	answers, err := AskField(context.Background(), driver, "title", map[string]any{"size": "30"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answers.Kind != "text_field" {
		t.Fatalf("unexpected kind %q", answers.Kind)
	}
	want := map[string]any{
		"size":     "30",
		"label":    "Title",
		"required": true,
		"hint":     "Keep it short",
	}
	if diff := cmp.Diff(want, answers.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	wantAsked := []string{`Field kind for "title"`, "Label=Title", "Required?", "Hint=", "Addendum="}
	if diff := cmp.Diff(wantAsked, driver.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestAskFieldPropagatesAbort(t *testing.T) {
	driver := &scriptedDriver{selects: []int{1}, err: ErrAborted}
	if _, err := AskField(context.Background(), driver, "title", nil); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAskFieldRejectsNilDriver(t *testing.T) {
	if _, err := AskField(context.Background(), nil, "title", nil); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}

type defaultsDriver struct{}

func (defaultsDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return cfg.Default, nil
}

func (defaultsDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (defaultsDriver) Select(context.Context, SelectConfig) (int, error) { return 0, nil }

func TestAskFieldKeepsSeedWhenDefaultsAccepted(t *testing.T) {
	seed := map[string]any{"required": "Custom", "label": nil, "hint": "Keep it short"}

	answers, err := AskField(context.Background(), defaultsDriver{}, "title", seed)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if diff := cmp.Diff(seed, answers.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestAskFieldOverridesSeedWhenAnswerChanges(t *testing.T) {
	driver := &scriptedDriver{
		selects:  []int{0},
		inputs:   []string{"Headline", "", ""},
		confirms: []bool{false},
	}
	seed := map[string]any{"required": "Custom", "label": nil}

	answers, err := AskField(context.Background(), driver, "title", seed)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	want := map[string]any{"required": false, "label": "Headline"}
	if diff := cmp.Diff(want, answers.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}
