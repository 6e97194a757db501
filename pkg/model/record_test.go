package model

import "testing"

func TestRecordBoundObject(t *testing.T) {
	rec := NewRecord(" article ").
		Set("title", "Hello").
		AddError("title", "is too short").
		Require("title").
		Label("title", "Article's Title")

	if rec.ObjectName() != "article" {
		t.Fatalf("expected trimmed name, got %q", rec.ObjectName())
	}
	if value, ok := rec.Value("title"); !ok || value != "Hello" {
		t.Fatalf("unexpected value %v (%v)", value, ok)
	}
	if _, ok := rec.Value("body"); ok {
		t.Fatalf("expected missing value for body")
	}
	if msgs := rec.Errors("title"); len(msgs) != 1 || msgs[0] != "is too short" {
		t.Fatalf("unexpected errors %v", msgs)
	}
	if !rec.RequiresPresence("title") || rec.RequiresPresence("body") {
		t.Fatalf("unexpected presence answers")
	}
	if got := DisplayName(rec, "title"); got != "Article's Title" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := DisplayName(rec, "published_on"); got != "Published on" {
		t.Fatalf("expected humanized fallback, got %q", got)
	}
}

func TestRecordPresenceFallback(t *testing.T) {
	presence := NewPresence([]string{"title", "body", " "}, map[string]string{"body": "Article body"})
	rec := NewRecord("article").WithPresence(presence)

	if !rec.RequiresPresence("body") {
		t.Fatalf("expected schema presence for body")
	}
	rec.Require("title")
	rec.required["body"] = false
	if rec.RequiresPresence("body") {
		t.Fatalf("explicit entry should win over schema presence")
	}
	if name, ok := rec.DisplayName("body"); !ok || name != "Article body" {
		t.Fatalf("unexpected display name %q (%v)", name, ok)
	}
}

func TestHelpersTolerateNilObject(t *testing.T) {
	if ErrorsFor(nil, "title") != nil {
		t.Fatalf("expected no errors for nil object")
	}
	if _, ok := ValueFor(nil, "title"); ok {
		t.Fatalf("expected no value for nil object")
	}
	if required, known := RequiresPresence(nil, "title"); required || known {
		t.Fatalf("expected unknown presence for nil object")
	}
	if got := DisplayName(nil, "title"); got != "Title" {
		t.Fatalf("unexpected display name %q", got)
	}
}

type plainObject struct{}

func (plainObject) ObjectName() string       { return "plain" }
func (plainObject) Value(string) (any, bool) { return nil, false }
func (plainObject) Errors(string) []string   { return nil }

func TestRequiresPresenceUnknownWithoutReflector(t *testing.T) {
	if required, known := RequiresPresence(plainObject{}, "title"); required || known {
		t.Fatalf("expected presence to be unknown")
	}
}
