package formbuilder

import (
	"strings"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/tags"
)

// decorate wraps the native control for field in a <p> carrying the label,
// feedback, addendum and hint.
func (b *Builder) decorate(kind FieldKind, descriptor kindDescriptor, field string, opts FieldOptions) (string, error) {
	value, _ := model.ValueFor(b.object, field)
	errs := nonBlank(model.ErrorsFor(b.object, field))

	tagValue := opts.TagValue
	if tagValue == "" && kind == RadioButton {
		tagValue = opts.Input["value"]
	}

	req := tags.Request{
		Kind:     descriptor.control,
		Object:   b.objectName,
		Field:    field,
		Value:    value,
		Attrs:    opts.Input.Without(decoratorKeys...),
		Choices:  opts.Choices,
		TagValue: tagValue,
		Options:  opts.Control,
	}

	control, err := b.inputs.Control(req)
	if err != nil {
		return "", err
	}
	if kind == ReadOnly {
		control += tags.ContentTag("span", tags.Escape(req.StringValue()), tags.Attributes{"class": "readonly"})
	}

	label := b.label(field, req.ID(), opts, errs)
	hint := b.annotation("hint", opts.Hint)

	var body strings.Builder
	if descriptor.layout == layoutShort {
		body.WriteString(control)
		body.WriteString(label)
		body.WriteString(hint)
	} else {
		body.WriteString(label)
		body.WriteString(control)
		body.WriteString(b.annotation("addendum", opts.Addendum))
		body.WriteString(hint)
	}

	return tags.ContentTag("p", body.String(), wrapperAttributes(descriptor.class, len(errs) > 0)), nil
}

func wrapperAttributes(class string, hasErrors bool) tags.Attributes {
	attrs := tags.Attributes{}
	if hasErrors {
		attrs = attrs.AddClass("error")
	}
	return attrs.AddClass(class)
}

// annotation renders hint or addendum text as a span. The text is markup and
// passes through the builder's sanitizer.
func (b *Builder) annotation(class, text string) string {
	cleaned := b.sanitize(text)
	if cleaned == "" {
		return ""
	}
	return tags.ContentTag("span", cleaned, tags.Attributes{"class": class})
}

func nonBlank(messages []string) []string {
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		if message = strings.TrimSpace(message); message != "" {
			out = append(out, message)
		}
	}
	return out
}
