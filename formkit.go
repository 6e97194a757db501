// Package formkit renders server-side form fields with labels, required
// markers, inline validation feedback, hint and addendum text, and purpose
// buttons. The heavy lifting lives in pkg/formbuilder; this package
// re-exports the common entry points.
package formkit

import (
	"github.com/goliatone/go-formkit/pkg/formbuilder"
	"github.com/goliatone/go-formkit/pkg/model"
)

// Builder aliases formbuilder.Builder.
type Builder = formbuilder.Builder

// FieldOptions aliases formbuilder.FieldOptions.
type FieldOptions = formbuilder.FieldOptions

// ButtonOptions aliases formbuilder.ButtonOptions.
type ButtonOptions = formbuilder.ButtonOptions

// FormOptions aliases formbuilder.FormOptions.
type FormOptions = formbuilder.FormOptions

// Purpose aliases formbuilder.Purpose.
type Purpose = formbuilder.Purpose

// FieldKind aliases formbuilder.FieldKind.
type FieldKind = formbuilder.FieldKind

// NewBuilder returns a Builder bound to object.
func NewBuilder(object model.BoundObject, options ...formbuilder.Option) (*Builder, error) {
	return formbuilder.New(object, options...)
}

// FormFor renders a <form> around the markup produced by body.
func FormFor(object model.BoundObject, opts FormOptions, body func(f *Builder) (string, error), options ...formbuilder.Option) (string, error) {
	return formbuilder.FormFor(object, opts, body, options...)
}

// LinkToForm renders a purpose link wrapped in <div class="buttons">.
func LinkToForm(purpose Purpose, opts ButtonOptions) (string, error) {
	return formbuilder.LinkToForm(purpose, opts)
}
