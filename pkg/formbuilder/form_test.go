package formbuilder

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formkit/components/countries"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/tags"
)

func TestFormForTunnelsMethod(t *testing.T) {
	article := model.NewRecord("article").Set("title", "Hello")

	got, err := FormFor(article, FormOptions{Action: "/articles/1", Method: "PUT"}, func(f *Builder) (string, error) {
		return f.Hidden("title", nil)
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form action="/articles/1" method="post">` +
		`<input name="_method" type="hidden" value="put">` +
		`<input id="article_title" name="article[title]" type="hidden" value="Hello">` +
		`</form>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestFormMethods(t *testing.T) {
	b := newBuilder(t, nil, WithInputs(&stubInputs{}))

	got, err := b.Form(FormOptions{Action: "/search", Method: "get", Multipart: true, Attrs: tags.Attributes{"class": "search"}}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<form action="/search" class="search" enctype="multipart/form-data" method="get"></form>` {
		t.Fatalf("unexpected markup %s", got)
	}

	if _, err := b.Form(FormOptions{Method: "TRACE"}, nil); err == nil {
		t.Fatalf("expected error for unsupported method")
	}

	boom := errors.New("boom")
	if _, err := b.Form(FormOptions{}, func(*Builder) (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("expected body error, got %v", err)
	}
}

func TestFieldsForNestsNames(t *testing.T) {
	author := model.NewRecord("author").Set("name", "Ada").AddError("name", "is too short")
	b := newBuilder(t, model.NewRecord("article"))

	nested := b.FieldsFor("author", author)
	if nested.ObjectName() != "article[author]" {
		t.Fatalf("unexpected nested name %q", nested.ObjectName())
	}
	got, err := nested.TextField("name", FieldOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p class="error text">` +
		`<label for="article_author_name">Name: <span class="feedback">Is too short.</span></label>` +
		`<input id="article_author_name" name="article[author][name]" type="text" value="Ada">` +
		`</p>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestReadOnlyShowsValue(t *testing.T) {
	b := newBuilder(t, model.NewRecord("article").Set("author", "Ada & Co"))

	got, err := b.ReadOnly("author", FieldOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p class="readonly">` +
		`<label for="article_author">Author:</label>` +
		`<input id="article_author" name="article[author]" type="hidden" value="Ada &amp; Co">` +
		`<span class="readonly">Ada &amp; Co</span>` +
		`</p>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestSelectAndRadioWithHelper(t *testing.T) {
	b := newBuilder(t, model.NewRecord("article").Set("state", "live"))

	got, err := b.Select("state", tags.Choices("draft", "live"), FieldOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p class="select"><label for="article_state">State:</label>` +
		`<select id="article_state" name="article[state]"><option value="draft">draft</option><option value="live" selected="selected">live</option></select></p>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}

	got, err = b.RadioButton("state", "live", FieldOptions{Label: LabelText("Live")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want = `<p class="radio">` +
		`<input checked="checked" id="article_state_live" name="article[state]" type="radio" value="live">` +
		`<label for="article_state_live">Live:</label></p>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestDateAndCountryFieldsWithHelper(t *testing.T) {
	helper, err := tags.New(
		tags.WithClock(func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }),
		tags.WithCountries([]countries.Country{{Code: "FR", Name: "France"}}),
	)
	if err != nil {
		t.Fatalf("helper: %v", err)
	}
	b := newBuilder(t, model.NewRecord("article"), WithInputs(helper))

	got, err := b.DateSelect("published_on", FieldOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(got, `<p class="date"><label for="article_published_on_1i">Published on:</label><select id="article_published_on_1i"`) {
		t.Fatalf("unexpected date markup %s", got)
	}

	got, err = b.CountrySelect("country", FieldOptions{Control: tags.ControlOptions{IncludeBlank: true}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p class="select"><label for="article_country">Country:</label>` +
		`<select id="article_country" name="article[country]"><option value=""></option><option value="France">France</option></select></p>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestFormHiddenFields(t *testing.T) {
	b := newBuilder(t, nil, WithInputs(&stubInputs{}))

	got, err := b.Form(FormOptions{
		Action: "/articles/1",
		Method: "PATCH",
		Hidden: []HiddenField{
			VersionField("lock_version", 3),
			AuthenticityToken("abc"),
			CSRFToken("", "ignored"),
			Hidden("lock_version", 4),
		},
	}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form action="/articles/1" method="post">` +
		`<input name="_method" type="hidden" value="patch">` +
		`<input name="authenticity_token" type="hidden" value="abc">` +
		`<input name="lock_version" type="hidden" value="4">` +
		`</form>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}
