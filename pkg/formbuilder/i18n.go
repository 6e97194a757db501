package formbuilder

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formkit/pkg/tags"
)

// ErrMissingTranslation is passed to a MissingTranslationHandler when the
// translator has no usable entry for a key.
var ErrMissingTranslation = errors.New("formbuilder: missing translation")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler picks the text used when a key cannot be
// translated. fallback is the text the builder would render untranslated.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Translation keys looked up by the builder.
const (
	TranslationRequired      = "formkit.required"
	translationLabelPrefix   = "formkit.labels."
	translationButtonsPrefix = "formkit.buttons."
)

// LabelTranslationKey returns the key consulted for the label of field on
// objects named object, e.g. formkit.labels.article.title.
func LabelTranslationKey(object, field string) string {
	object = tags.SanitizeID(object)
	if object == "" {
		return translationLabelPrefix + field
	}
	return translationLabelPrefix + object + "." + field
}

// ButtonTranslationKey returns the key consulted for the legend of purpose.
func ButtonTranslationKey(purpose Purpose) string {
	return translationButtonsPrefix + string(purpose)
}

func (b *Builder) translate(key, fallback string) string {
	if b.translator == nil {
		return fallback
	}
	result, err := b.translator.Translate(b.locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if b.onMissing != nil {
		if err == nil {
			err = ErrMissingTranslation
		}
		return b.onMissing(b.locale, key, fallback, err)
	}
	return fallback
}

func (b *Builder) signifier() string {
	return b.translate(TranslationRequired, b.defaults.RequiredSignifier)
}

func (b *Builder) buttonLabel(purpose Purpose) string {
	return b.translate(ButtonTranslationKey(purpose), capitalize(string(purpose)))
}
