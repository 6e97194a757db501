package formbuilder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/tags"
)

// MethodOverrideField carries the real verb when a form tunnels PUT, PATCH
// or DELETE through POST.
const MethodOverrideField = "_method"

// FormOptions describes the <form> element.
type FormOptions struct {
	Action string
	// Method defaults to POST. PUT, PATCH and DELETE submit as POST with a
	// hidden _method input.
	Method string
	// Multipart sets enctype="multipart/form-data" for file fields.
	Multipart bool
	// Hidden inputs rendered before the body, sorted by name.
	Hidden []HiddenField
	Attrs  tags.Attributes
}

// FormFor renders a <form> around the markup produced by body, which
// receives a Builder bound to object.
func FormFor(object model.BoundObject, opts FormOptions, body func(f *Builder) (string, error), options ...Option) (string, error) {
	builder, err := New(object, options...)
	if err != nil {
		return "", err
	}
	return builder.Form(opts, body)
}

// Form renders a <form> around the markup produced by body.
func (b *Builder) Form(opts FormOptions, body func(f *Builder) (string, error)) (string, error) {
	method, override, err := formMethod(opts.Method)
	if err != nil {
		return "", err
	}

	attrs := tags.Attributes{
		"action": opts.Action,
		"method": method,
	}
	if opts.Multipart {
		attrs["enctype"] = "multipart/form-data"
	}
	attrs = attrs.Merge(opts.Attrs)

	var content strings.Builder
	if override != "" {
		content.WriteString(tags.Tag("input", tags.Attributes{
			"name":  MethodOverrideField,
			"type":  "hidden",
			"value": override,
		}))
	}
	content.WriteString(hiddenInputs(opts.Hidden))
	if body != nil {
		inner, err := body(b)
		if err != nil {
			return "", err
		}
		content.WriteString(inner)
	}
	return tags.ContentTag("form", content.String(), attrs), nil
}

func formMethod(raw string) (method, override string, err error) {
	verb := strings.ToUpper(strings.TrimSpace(raw))
	switch verb {
	case "", http.MethodPost:
		return "post", "", nil
	case http.MethodGet:
		return "get", "", nil
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return "post", strings.ToLower(verb), nil
	}
	return "", "", fmt.Errorf("formbuilder: unsupported form method %q", raw)
}
