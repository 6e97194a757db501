package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goliatone/go-formkit/internal/prompt"
	"github.com/goliatone/go-formkit/pkg/formbuilder"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()
	verbose, configPath, envPath = false, "", ""
	t.Cleanup(func() { logger = nil })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestFieldCommandRendersDecoratedField(t *testing.T) {
	out, err := execute(t, "field", "title",
		"--object", "article",
		"--value", "Hello",
		"--require",
		"--errors", `{"article[title]":["can not be blank"]}`,
		"--options", `{"hint":"Keep it short"}`,
	)
	require.NoError(t, err)

	want := `<p class="error text"><label for="article_title">Title: <em class="required">(required)</em>` +
		`<span class="feedback">Can not be blank.</span></label>` +
		`<input id="article_title" name="article[title]" type="text" value="Hello">` +
		`<span class="hint">Keep it short</span></p>`
	assert.Equal(t, want, out)
}

func TestFieldCommandKindFlag(t *testing.T) {
	out, err := execute(t, "field", "published", "--object", "article", "--kind", "check_box", "--value", "1")
	require.NoError(t, err)

	assert.Equal(t, `<p class="checkbox"><input name="article[published]" type="hidden" value="0">`+
		`<input checked="checked" id="article_published" name="article[published]" type="checkbox" value="1">`+
		`<label for="article_published">Published:</label></p>`, out)
}

func TestFieldCommandReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requiredSignifier: \"*\"\n"), 0o644))

	out, err := execute(t, "field", "title", "--object", "article", "--require", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `<em class="required">*</em>`)
}

func TestFieldCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "field", "title", "--kind", "slider")
	require.ErrorIs(t, err, formbuilder.ErrUnsupportedFieldKind)

	_, err = execute(t, "field", "title", "--options", "{not json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --options")

	_, err = execute(t, "field", "title", "--errors", `["nope"]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --errors")

	_, err = execute(t, "field")
	require.Error(t, err)
}

type stubDriver struct {
	inputs   []string
	confirms []bool
	selected int
}

func (s *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	value := s.inputs[0]
	s.inputs = s.inputs[1:]
	return value, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	value := s.confirms[0]
	s.confirms = s.confirms[1:]
	return value, nil
}

func (s *stubDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	return s.selected, nil
}

func TestFieldCommandInteractive(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"Headline", "Short", ""},
		confirms: []bool{true},
		selected: 0,
	}
	previous := newPromptDriver
	newPromptDriver = func() prompt.Driver { return driver }
	t.Cleanup(func() { newPromptDriver = previous })

	out, err := execute(t, "field", "title", "--object", "article", "--interactive")
	require.NoError(t, err)

	assert.Equal(t, `<p class="text"><label for="article_title">Headline: <em class="required">(required)</em></label>`+
		`<input id="article_title" name="article[title]" type="text"><span class="hint">Short</span></p>`, out)
}

func TestButtonCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "save",
			args: []string{"button", "save", "--no-icon"},
			want: `<button class="positive" type="submit">Save</button>`,
		},
		{
			name: "edit link",
			args: []string{"button", "edit", "--url", "/articles/1/edit"},
			want: `<a href="/articles/1/edit"><img alt="" src="/images/icons/pencil.png"> Edit</a>`,
		},
		{
			name: "delete as form link",
			args: []string{"button", "delete", "--link", "--no-icon", "--url", "/articles/1"},
			want: `<div class="buttons"><a class="negative" href="/articles/1">Delete</a></div>`,
		},
		{
			name: "label and attrs",
			args: []string{"button", "save", "--no-icon", "--label", "Publish", "--attrs", `{"name":"commit"}`},
			want: `<button class="positive" name="commit" type="submit">Publish</button>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestButtonCommandUnknownPurpose(t *testing.T) {
	_, err := execute(t, "button", "archive")
	require.ErrorIs(t, err, formbuilder.ErrUnsupportedPurpose)
}

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(formbuilder.Kinds())+len(formbuilder.Purposes()))
	assert.Equal(t, "field\ttext_field\ttext\tlong", lines[0])
	assert.Contains(t, out, "field\tcheck_box\tcheckbox\tshort")
	assert.Contains(t, out, "button\tsave")
}
