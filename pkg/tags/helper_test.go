package tags

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formkit/components/countries"
)

func newTestHelper(t *testing.T, opts ...Option) *Helper {
	t.Helper()
	helper, err := New(opts...)
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	return helper
}

func render(t *testing.T, h *Helper, req Request) string {
	t.Helper()
	out, err := h.Control(req)
	if err != nil {
		t.Fatalf("render %s: %v", req.Kind, err)
	}
	return out
}

func TestControlTextInputs(t *testing.T) {
	h := newTestHelper(t)

	cases := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "text with value",
			req:  Request{Kind: KindText, Object: "article", Field: "title", Value: "Hello", Attrs: Attributes{"size": "30"}},
			want: `<input id="article_title" name="article[title]" size="30" type="text" value="Hello">`,
		},
		{
			name: "text without value",
			req:  Request{Kind: KindText, Object: "article", Field: "title"},
			want: `<input id="article_title" name="article[title]" type="text">`,
		},
		{
			name: "password never echoes",
			req:  Request{Kind: KindPassword, Object: "user", Field: "password", Value: "secret"},
			want: `<input id="user_password" name="user[password]" type="password">`,
		},
		{
			name: "file",
			req:  Request{Kind: KindFile, Object: "article", Field: "cover"},
			want: `<input id="article_cover" name="article[cover]" type="file">`,
		},
		{
			name: "hidden",
			req:  Request{Kind: KindHidden, Object: "article", Field: "author_id", Value: 42},
			want: `<input id="article_author_id" name="article[author_id]" type="hidden" value="42">`,
		},
		{
			name: "explicit id wins",
			req:  Request{Kind: KindText, Object: "article", Field: "title", Attrs: Attributes{"id": "headline"}},
			want: `<input id="headline" name="article[title]" type="text">`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := render(t, h, tc.req); got != tc.want {
				t.Fatalf("unexpected markup\nwant: %s\n got: %s", tc.want, got)
			}
		})
	}
}

func TestControlTextAreaEscapesContent(t *testing.T) {
	h := newTestHelper(t)
	got := render(t, h, Request{Kind: KindTextArea, Object: "article", Field: "body", Value: "<b>bold</b>"})
	want := `<textarea id="article_body" name="article[body]">&lt;b&gt;bold&lt;/b&gt;</textarea>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestControlCheckboxEmitsHiddenFallback(t *testing.T) {
	h := newTestHelper(t)

	got := render(t, h, Request{Kind: KindCheckbox, Object: "article", Field: "published", Value: true})
	want := `<input name="article[published]" type="hidden" value="0">` +
		`<input checked="checked" id="article_published" name="article[published]" type="checkbox" value="1">`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}

	got = render(t, h, Request{
		Kind:    KindCheckbox,
		Object:  "article",
		Field:   "visibility",
		Value:   "private",
		Options: ControlOptions{CheckedValue: "public", UncheckedValue: "private"},
	})
	if strings.Contains(got, "checked=") {
		t.Fatalf("expected unchecked box, got %s", got)
	}
	if !strings.Contains(got, `type="hidden" value="private"`) || !strings.Contains(got, `type="checkbox" value="public"`) {
		t.Fatalf("expected custom checked/unchecked values, got %s", got)
	}
}

func TestControlRadio(t *testing.T) {
	h := newTestHelper(t)
	got := render(t, h, Request{Kind: KindRadio, Object: "article", Field: "state", Value: "draft", TagValue: "draft"})
	want := `<input checked="checked" id="article_state_draft" name="article[state]" type="radio" value="draft">`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestControlSelect(t *testing.T) {
	h := newTestHelper(t)
	got := render(t, h, Request{
		Kind:    KindSelect,
		Object:  "article",
		Field:   "state",
		Value:   "live",
		Choices: Choices("draft", "live"),
		Options: ControlOptions{IncludeBlank: true},
	})
	want := `<select id="article_state" name="article[state]">` +
		`<option value=""></option>` +
		`<option value="draft">draft</option>` +
		`<option value="live" selected="selected">live</option>` +
		`</select>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}

	prompted := render(t, h, Request{
		Kind:    KindSelect,
		Object:  "article",
		Field:   "state",
		Choices: []Choice{{Label: "Draft & review", Value: "draft"}},
		Options: ControlOptions{Prompt: "Pick one"},
	})
	if !strings.Contains(prompted, `<option value="">Pick one</option>`) {
		t.Fatalf("expected prompt option, got %s", prompted)
	}
	if !strings.Contains(prompted, `>Draft &amp; review</option>`) {
		t.Fatalf("expected escaped label, got %s", prompted)
	}
}

func TestControlCountrySelect(t *testing.T) {
	h := newTestHelper(t, WithCountries([]countries.Country{
		{Code: "FR", Name: "France"},
		{Code: "DE", Name: "Germany"},
	}))

	got := render(t, h, Request{
		Kind:    KindCountry,
		Object:  "user",
		Field:   "country",
		Value:   "Germany",
		Options: ControlOptions{Priority: []string{"France"}},
	})
	want := `<select id="user_country" name="user[country]">` +
		`<option value="France">France</option>` +
		`<option value="" disabled="disabled">-------------</option>` +
		`<option value="France">France</option>` +
		`<option value="Germany" selected="selected">Germany</option>` +
		`</select>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestControlCountrySelectDefaultsToEmbeddedList(t *testing.T) {
	h := newTestHelper(t)
	got := render(t, h, Request{Kind: KindCountry, Object: "user", Field: "country"})
	if !strings.Contains(got, `<option value="Portugal">Portugal</option>`) {
		t.Fatalf("expected embedded countries, got %s", got)
	}
}

func TestControlDateSelectUsesClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC) }
	h := newTestHelper(t, WithClock(clock))

	got := render(t, h, Request{
		Kind:    KindDate,
		Object:  "article",
		Field:   "published_on",
		Options: ControlOptions{StartYear: 2023, EndYear: 2025},
	})

	if n := strings.Count(got, "<select"); n != 3 {
		t.Fatalf("expected 3 selects, got %d in %s", n, got)
	}
	for _, fragment := range []string{
		`<select id="article_published_on_1i" name="article[published_on(1i)]">`,
		`<select id="article_published_on_2i" name="article[published_on(2i)]">`,
		`<select id="article_published_on_3i" name="article[published_on(3i)]">`,
		`<option value="2023">2023</option>`,
		`<option value="2024" selected="selected">2024</option>`,
		`<option value="3" selected="selected">March</option>`,
		`<option value="5" selected="selected">5</option>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in %s", fragment, got)
		}
	}
	if strings.Contains(got, `value="2026"`) {
		t.Fatalf("expected end year to bound the range, got %s", got)
	}
}

func TestControlDateTimeSelectUsesValue(t *testing.T) {
	h := newTestHelper(t)
	got := render(t, h, Request{
		Kind:   KindDateTime,
		Object: "event",
		Field:  "starts_at",
		Value:  "2021-12-24T18:05:00Z",
	})

	if n := strings.Count(got, "<select"); n != 5 {
		t.Fatalf("expected 5 selects, got %d", n)
	}
	for _, fragment := range []string{
		`<option value="2021" selected="selected">2021</option>`,
		`<option value="12" selected="selected">December</option>`,
		`</select> &mdash; <select id="event_starts_at_4i"`,
		`<option value="18" selected="selected">18</option>`,
		`</select> : <select id="event_starts_at_5i"`,
		`<option value="05" selected="selected">05</option>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in %s", fragment, got)
		}
	}
}

func TestControlUnsupportedKind(t *testing.T) {
	h := newTestHelper(t)
	_, err := h.Control(Request{Kind: Kind("email"), Field: "email"})
	if !errors.Is(err, ErrUnsupportedControl) {
		t.Fatalf("expected ErrUnsupportedControl, got %v", err)
	}
}

func TestRegistryAcceptsCustomKinds(t *testing.T) {
	registry := NewDefaultRegistry().Clone()
	registry.MustRegister("email", renderTextInput("email"))

	h := newTestHelper(t, WithRegistry(registry))
	got := render(t, h, Request{Kind: Kind("Email"), Object: "user", Field: "email"})
	if got != `<input id="user_email" name="user[email]" type="email">` {
		t.Fatalf("unexpected markup %s", got)
	}

	if _, ok := NewDefaultRegistry().Renderer("email"); ok {
		t.Fatalf("clone must not leak registrations into new registries")
	}
	if err := registry.Register(" ", renderFile); err == nil {
		t.Fatalf("expected error for blank kind")
	}
}

func TestRequestIDAndNameHonourAttributes(t *testing.T) {
	req := Request{Kind: KindDate, Object: "article", Field: "published_on"}
	if got := req.ID(); got != "article_published_on_1i" {
		t.Fatalf("unexpected date id %q", got)
	}
	req = Request{Kind: KindText, Object: "article", Field: "title", Attrs: Attributes{"name": "q"}}
	if got := req.Name(); got != "q" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestDefaultHelperIsShared(t *testing.T) {
	first, err := Default()
	if err != nil {
		t.Fatalf("default helper: %v", err)
	}
	second, err := Default()
	if err != nil {
		t.Fatalf("default helper: %v", err)
	}
	if first != second {
		t.Fatalf("expected Default to return the same helper")
	}
	got := render(t, first, Request{Kind: KindText, Object: "article", Field: "title"})
	if got != `<input id="article_title" name="article[title]" type="text">` {
		t.Fatalf("unexpected markup %s", got)
	}
}
