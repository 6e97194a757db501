package formbuilder

import (
	"strings"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/tags"
)

// label renders <label for="id">Text: <em class="required">…</em><span
// class="feedback">…</span></label>, or nothing when the label is
// suppressed.
func (b *Builder) label(field, controlID string, opts FieldOptions, errs []string) string {
	if opts.NoLabel {
		return ""
	}

	text := model.DisplayName(b.object, field)
	if b.translator != nil {
		text = b.translate(LabelTranslationKey(b.objectName, field), text)
	}
	if opts.Label != nil {
		text = *opts.Label
	}
	suffix := b.defaults.LabelSuffix
	if opts.Suffix != nil {
		suffix = *opts.Suffix
	}

	var content strings.Builder
	content.WriteString(tags.Escape(text + suffix))

	var markers strings.Builder
	if marker, ok := b.requiredMarker(field, opts.Required); ok {
		markers.WriteString(tags.ContentTag("em", tags.Escape(marker), tags.Attributes{"class": "required"}))
	}
	if len(errs) > 0 {
		capitalize := b.defaults.CapitalizeErrors
		if opts.Capitalize != nil {
			capitalize = *opts.Capitalize
		}
		feedback := ErrorSentence(errs, capitalize)
		markers.WriteString(tags.ContentTag("span", tags.Escape(feedback), tags.Attributes{"class": "feedback"}))
	}
	if markers.Len() > 0 {
		if content.Len() > 0 {
			content.WriteByte(' ')
		}
		content.WriteString(markers.String())
	}

	attrs := tags.Attributes{"for": controlID}.Merge(opts.LabelAttrs)
	return tags.ContentTag("label", content.String(), attrs)
}

// requiredMarker resolves the marker text: explicit option first, then the
// object's presence metadata.
func (b *Builder) requiredMarker(field string, req *Requirement) (string, bool) {
	if req != nil {
		if !req.On {
			return "", false
		}
		if req.Text != "" {
			return req.Text, true
		}
		signifier := b.signifier()
		return signifier, signifier != ""
	}
	if required, known := model.RequiresPresence(b.object, field); known && required {
		signifier := b.signifier()
		return signifier, signifier != ""
	}
	return "", false
}

// ErrorSentence joins messages into one sentence ending in a period,
// upper-casing the first letter when capitalize is set.
func ErrorSentence(messages []string, capitalize bool) string {
	sentence := strings.TrimSpace(model.ToSentence(messages))
	if sentence == "" {
		return ""
	}
	if capitalize {
		sentence = model.UpperFirst(sentence)
	}
	if !strings.HasSuffix(sentence, ".") {
		sentence += "."
	}
	return sentence
}
