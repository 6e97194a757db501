package pongo_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formkit/pkg/render/template/pongo"
)

func newEngine(t *testing.T, opts ...pongo.Option) *pongo.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tpl": {Data: []byte("{{ name|shout }}")},
		"labels.tpl":     {Data: []byte("{{ field|humanize }} / {{ messages|sentence }}")},
		"escape.tpl":     {Data: []byte("<b>{{ value }}</b>{{ markup|safe }}")},
	}

	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRenderTemplateWritesToOutputs(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if buf.String() != result {
		t.Fatalf("writer mismatch: %q", buf.String())
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil && !errors.Is(err, pongo.ErrFilterExists) {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); !errors.Is(err, pongo.ErrFilterExists) {
		t.Fatalf("expected ErrFilterExists, got %v", err)
	}
}

func TestEngineDefaultFilters(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("labels", map[string]any{
		"field":    "published_on",
		"messages": []string{"is blank", "is too short"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Published on / is blank and is too short" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngineEscapesUnlessSafe(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape", map[string]any{
		"value":  "<i>x</i>",
		"markup": "<i>y</i>",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "<b>&lt;i&gt;x&lt;/i&gt;</b><i>y</i>" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngineRenderDispatchesInlineContent(t *testing.T) {
	engine := newEngine(t)

	type payload struct {
		Name string `json:"name"`
	}
	result, err := engine.Render("Hi {{ name }}", payload{Name: "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hi Grace" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngineRequiresLoader(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without loaders")
	}
}

func TestEngineMissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestEngineConstructionAndFiltersAreConcurrencySafe(t *testing.T) {
	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engine, err := pongo.New(pongo.WithFS(fstest.MapFS{
				"labels.tpl": {Data: []byte("{{ field|humanize }}")},
			}))
			if err != nil {
				errs[i] = err
				return
			}
			name := fmt.Sprintf("concurrent_%d", i)
			if err := engine.RegisterFilter(name, func(in any, _ any) (any, error) { return in, nil }); err != nil {
				errs[i] = err
				return
			}
			out, err := engine.RenderString(fmt.Sprintf("{{ value|%s }}", name), map[string]any{"value": "ok"})
			if err != nil {
				errs[i] = err
				return
			}
			if out != "ok" {
				errs[i] = fmt.Errorf("unexpected inline output %q", out)
				return
			}
			out, err = engine.RenderTemplate("labels", map[string]any{"field": "first_name"})
			if err == nil && out != "First name" {
				err = fmt.Errorf("unexpected template output %q", out)
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
	}
}
