package formbuilder

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-formkit/pkg/config"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/tags"
)

// Inputs renders the native control a field decorates. *tags.Helper is the
// default implementation.
type Inputs interface {
	Control(req tags.Request) (string, error)
}

// Option configures a Builder.
type Option func(*builderConfig)

type builderConfig struct {
	inputs     Inputs
	defaults   config.Defaults
	overrides  config.Overrides
	logger     *zap.Logger
	theme      *theme.RendererConfig
	policy     *bluemonday.Policy
	objectName *string
	translator Translator
	locale     string
	onMissing  MissingTranslationHandler
}

// WithInputs replaces the control helper.
func WithInputs(inputs Inputs) Option {
	return func(cfg *builderConfig) {
		if inputs != nil {
			cfg.inputs = inputs
		}
	}
}

// WithDefaults sets the process-wide defaults the builder starts from.
func WithDefaults(defaults config.Defaults) Option {
	return func(cfg *builderConfig) {
		cfg.defaults = defaults
	}
}

// WithOverrides applies per-form overrides on top of the defaults.
// Repeated calls merge, later values winning.
func WithOverrides(overrides config.Overrides) Option {
	return func(cfg *builderConfig) {
		cfg.overrides = cfg.overrides.Merge(overrides)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *builderConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTheme resolves button icons through the theme's asset resolver.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *builderConfig) {
		c.theme = cfg
	}
}

// WithPolicy replaces the policy used to sanitize hint and addendum markup.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *builderConfig) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithObjectName overrides the object's param key.
func WithObjectName(name string) Option {
	return func(cfg *builderConfig) {
		cfg.objectName = &name
	}
}

// WithTranslator localizes labels, the required signifier and button
// legends. Explicit options still win over translations.
func WithTranslator(t Translator) Option {
	return func(cfg *builderConfig) {
		cfg.translator = t
	}
}

// WithLocale sets the locale handed to the translator.
func WithLocale(locale string) Option {
	return func(cfg *builderConfig) {
		cfg.locale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslationHandler is called when the translator has no entry
// for a key.
func WithMissingTranslationHandler(fn MissingTranslationHandler) Option {
	return func(cfg *builderConfig) {
		cfg.onMissing = fn
	}
}

// Builder renders decorated fields and purpose buttons for one bound object.
// A Builder is read-only after construction and safe for concurrent use.
type Builder struct {
	object     model.BoundObject
	objectName string
	inputs     Inputs
	defaults   config.Defaults
	logger     *zap.Logger
	theme      *theme.RendererConfig
	policy     *bluemonday.Policy
	translator Translator
	locale     string
	onMissing  MissingTranslationHandler
}

// New builds a Builder for object. A nil object is valid: fields render
// without values, errors or presence metadata.
func New(object model.BoundObject, options ...Option) (*Builder, error) {
	cfg := builderConfig{
		defaults: config.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.inputs == nil {
		helper, err := tags.Default()
		if err != nil {
			return nil, fmt.Errorf("formbuilder: configure inputs: %w", err)
		}
		cfg.inputs = helper
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.policy == nil {
		cfg.policy = markupPolicy()
	}

	name := ""
	if object != nil {
		name = object.ObjectName()
	}
	if cfg.objectName != nil {
		name = *cfg.objectName
	}

	return &Builder{
		object:     object,
		objectName: name,
		inputs:     cfg.inputs,
		defaults:   cfg.defaults.Derive(cfg.overrides),
		logger:     cfg.logger,
		theme:      cfg.theme,
		policy:     cfg.policy,
		translator: cfg.translator,
		locale:     cfg.locale,
		onMissing:  cfg.onMissing,
	}, nil
}

// MustNew mirrors New but panics on error.
func MustNew(object model.BoundObject, options ...Option) *Builder {
	builder, err := New(object, options...)
	if err != nil {
		panic(err)
	}
	return builder
}

// ObjectName returns the param key used for ids and names.
func (b *Builder) ObjectName() string {
	return b.objectName
}

// Object returns the bound object.
func (b *Builder) Object() model.BoundObject {
	return b.object
}

// Defaults returns the effective configuration of this builder.
func (b *Builder) Defaults() config.Defaults {
	return b.defaults
}

// FieldsFor returns a builder for a nested object whose controls are named
// parent[name][field].
func (b *Builder) FieldsFor(name string, object model.BoundObject) *Builder {
	child := *b
	child.object = object
	child.objectName = tags.FieldName(b.objectName, name)
	return &child
}

// Field renders field as kind.
func (b *Builder) Field(kind FieldKind, field string, opts FieldOptions) (string, error) {
	descriptor, err := kind.descriptor()
	if err != nil {
		b.logger.Debug("unsupported field kind", zap.String("kind", string(kind)), zap.String("field", field))
		return "", err
	}

	html, err := b.decorate(kind, descriptor, field, opts)
	if err != nil {
		b.logger.Debug("render field failed",
			zap.String("kind", string(kind)),
			zap.String("object", b.objectName),
			zap.String("field", field),
			zap.Error(err),
		)
		return "", fmt.Errorf("formbuilder: render %s %q: %w", kind, field, err)
	}
	return html, nil
}

// MustField mirrors Field but panics on error.
func (b *Builder) MustField(kind FieldKind, field string, opts FieldOptions) string {
	return Must(b.Field(kind, field, opts))
}

// RenderField resolves kindName and raw options, then renders field. It is
// the entry point for callers holding loosely typed options.
func (b *Builder) RenderField(kindName, field string, raw map[string]any) (string, error) {
	kind, err := ParseFieldKind(kindName)
	if err != nil {
		return "", err
	}
	opts, err := ParseOptions(raw)
	if err != nil {
		return "", err
	}
	return b.Field(kind, field, opts)
}

func (b *Builder) TextField(field string, opts FieldOptions) (string, error) {
	return b.Field(TextField, field, opts)
}

func (b *Builder) TextArea(field string, opts FieldOptions) (string, error) {
	return b.Field(TextArea, field, opts)
}

func (b *Builder) PasswordField(field string, opts FieldOptions) (string, error) {
	return b.Field(PasswordField, field, opts)
}

func (b *Builder) FileField(field string, opts FieldOptions) (string, error) {
	return b.Field(FileField, field, opts)
}

func (b *Builder) DateSelect(field string, opts FieldOptions) (string, error) {
	return b.Field(DateSelect, field, opts)
}

func (b *Builder) DateTimeSelect(field string, opts FieldOptions) (string, error) {
	return b.Field(DateTimeSelect, field, opts)
}

func (b *Builder) CountrySelect(field string, opts FieldOptions) (string, error) {
	return b.Field(CountrySelect, field, opts)
}

func (b *Builder) CheckBox(field string, opts FieldOptions) (string, error) {
	return b.Field(CheckBox, field, opts)
}

// ReadOnly renders the current value as text next to a hidden input that
// carries it back on submit.
func (b *Builder) ReadOnly(field string, opts FieldOptions) (string, error) {
	return b.Field(ReadOnly, field, opts)
}

// Select renders a select over choices.
func (b *Builder) Select(field string, choices []tags.Choice, opts FieldOptions) (string, error) {
	opts.Choices = choices
	return b.Field(Select, field, opts)
}

// RadioButton renders the radio button submitting tagValue.
func (b *Builder) RadioButton(field, tagValue string, opts FieldOptions) (string, error) {
	opts.TagValue = tagValue
	return b.Field(RadioButton, field, opts)
}

// Hidden renders an undecorated hidden input.
func (b *Builder) Hidden(field string, attrs tags.Attributes) (string, error) {
	value, _ := model.ValueFor(b.object, field)
	html, err := b.inputs.Control(tags.Request{
		Kind:   tags.KindHidden,
		Object: b.objectName,
		Field:  field,
		Value:  value,
		Attrs:  attrs,
	})
	if err != nil {
		return "", fmt.Errorf("formbuilder: render hidden %q: %w", field, err)
	}
	return html, nil
}
