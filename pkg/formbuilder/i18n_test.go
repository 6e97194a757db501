package formbuilder

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formkit/pkg/model"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestTranslatedLabelAndSignifier(t *testing.T) {
	article := model.NewRecord("article").Require("title")
	b := newBuilder(t, article,
		WithInputs(&stubInputs{}),
		WithLocale("es"),
		WithTranslator(stubTranslator{
			"formkit.labels.article.title": "Título",
			TranslationRequired:            "(obligatorio)",
		}),
	)

	got, err := b.TextField("title", FieldOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p class="text"><label for="article_title">Título: <em class="required">(obligatorio)</em></label><control></p>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}

	got, err = b.TextField("title", FieldOptions{Label: LabelText("Headline")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want = `<p class="text"><label for="article_title">Headline: <em class="required">(obligatorio)</em></label><control></p>`
	if got != want {
		t.Fatalf("expected explicit label to win\nwant: %s\n got: %s", want, got)
	}
}

func TestMissingTranslationFallsBack(t *testing.T) {
	var missing []string
	b := newBuilder(t, model.NewRecord("article"),
		WithInputs(&stubInputs{}),
		WithLocale("fr"),
		WithTranslator(stubTranslator{}),
		WithMissingTranslationHandler(func(locale, key, fallback string, err error) string {
			missing = append(missing, locale+":"+key)
			return fallback
		}),
	)

	got, err := b.TextField("body_text", FieldOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<p class="text"><label for="article_body_text">Body text:</label><control></p>` {
		t.Fatalf("unexpected markup %s", got)
	}
	if len(missing) != 1 || missing[0] != "fr:formkit.labels.article.body_text" {
		t.Fatalf("unexpected missing keys %v", missing)
	}
}

func TestTranslatedButtonLegend(t *testing.T) {
	b := newBuilder(t, nil,
		WithInputs(&stubInputs{}),
		WithTranslator(stubTranslator{"formkit.buttons.save": "Guardar"}),
	)

	got, err := b.Save(ButtonOptions{NoIcon: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<button class="positive" type="submit">Guardar</button>` {
		t.Fatalf("unexpected markup %s", got)
	}

	got, err = b.Cancel(ButtonOptions{NoIcon: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<a href="">Cancel</a>` {
		t.Fatalf("expected untranslated fallback, got %s", got)
	}
}

func TestTranslationKeys(t *testing.T) {
	if got := LabelTranslationKey("article[author]", "name"); got != "formkit.labels.article_author.name" {
		t.Fatalf("unexpected nested key %q", got)
	}
	if got := LabelTranslationKey("", "name"); got != "formkit.labels.name" {
		t.Fatalf("unexpected bare key %q", got)
	}
	if got := ButtonTranslationKey(PurposeDelete); got != "formkit.buttons.delete" {
		t.Fatalf("unexpected button key %q", got)
	}
}
