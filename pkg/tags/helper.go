package tags

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-formkit/components/countries"
	rendertemplate "github.com/goliatone/go-formkit/pkg/render/template"
	"github.com/goliatone/go-formkit/pkg/render/template/pongo"
)

// Option configures a Helper.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *Registry
	clock            func() time.Time
	countries        []countries.Country
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry replaces the control registry.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithClock sets the time source used when a date control has no value.
func WithClock(clock func() time.Time) Option {
	return func(cfg *config) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithCountries replaces the embedded country list used by country selects.
func WithCountries(list []countries.Country) Option {
	return func(cfg *config) {
		cfg.countries = append([]countries.Country(nil), list...)
	}
}

// Helper renders native, undecorated controls.
type Helper struct {
	templates rendertemplate.TemplateRenderer
	registry  *Registry
	clock     func() time.Time
	countries []countries.Country
}

// New constructs a Helper applying any provided options.
func New(options ...Option) (*Helper, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		clock:      time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("tags: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Helper{
		templates: renderer,
		registry:  cfg.registry,
		clock:     cfg.clock,
		countries: cfg.countries,
	}, nil
}

// MustNew mirrors New but panics on error.
func MustNew(options ...Option) *Helper {
	helper, err := New(options...)
	if err != nil {
		panic(err)
	}
	return helper
}

var (
	defaultHelperOnce sync.Once
	defaultHelper     *Helper
	defaultHelperErr  error
)

// Default returns a process-wide Helper over the embedded templates. It is
// built on first use and shared by callers that configure nothing. Register
// custom kinds on a Helper from New, not on this one.
func Default() (*Helper, error) {
	defaultHelperOnce.Do(func() {
		defaultHelper, defaultHelperErr = New()
	})
	return defaultHelper, defaultHelperErr
}

// Control renders req through the renderer registered for its kind.
func (h *Helper) Control(req Request) (string, error) {
	if h == nil {
		return "", fmt.Errorf("tags: helper is nil")
	}
	fn, ok := h.registry.Renderer(req.Kind)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedControl, req.Kind)
	}
	return fn(h, req)
}

// Registry exposes the control registry for extension.
func (h *Helper) Registry() *Registry {
	return h.registry
}

// Now returns the helper clock's current time.
func (h *Helper) Now() time.Time {
	return h.clock()
}

// Input renders an <input> element through the input template.
func (h *Helper) Input(attrs Attributes) (string, error) {
	return h.render(inputTemplate, map[string]any{
		"attrs": attrs.String(),
	})
}

// TextArea renders a <textarea> holding value.
func (h *Helper) TextArea(value string, attrs Attributes) (string, error) {
	return h.render(textAreaTemplate, map[string]any{
		"attrs": attrs.String(),
		"value": value,
	})
}

// SelectTag renders a <select> with choices, marking those equal to
// selected.
func (h *Helper) SelectTag(choices []Choice, selected string, attrs Attributes) (string, error) {
	options := make([]map[string]any, 0, len(choices))
	for _, choice := range choices {
		options = append(options, map[string]any{
			"value":    choice.Value,
			"label":    choice.Label,
			"selected": !choice.Disabled && selected != "" && choice.Value == selected,
			"disabled": choice.Disabled,
		})
	}
	return h.render(selectTemplate, map[string]any{
		"attrs":   attrs.String(),
		"options": options,
	})
}

// Countries returns the list used by country selects.
func (h *Helper) Countries() ([]countries.Country, error) {
	if h.countries != nil {
		return append([]countries.Country(nil), h.countries...), nil
	}
	return countries.DefaultCountries()
}

func (h *Helper) render(name string, data map[string]any) (string, error) {
	if h.templates == nil {
		return "", fmt.Errorf("tags: template renderer not configured for %q", name)
	}
	out, err := h.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("tags: render template %q: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}
