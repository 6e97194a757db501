package model

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Presence carries required-field and display-name metadata extracted from
// a schema. A nil *Presence answers "not required" and "no display name".
type Presence struct {
	required map[string]struct{}
	titles   map[string]string
}

var (
	_ PresenceReflector = (*Presence)(nil)
	_ DisplayNamer      = (*Presence)(nil)
)

// NewPresence builds presence metadata from explicit lists.
func NewPresence(required []string, titles map[string]string) *Presence {
	p := &Presence{
		required: make(map[string]struct{}, len(required)),
		titles:   make(map[string]string, len(titles)),
	}
	for _, field := range required {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p.required[field] = struct{}{}
	}
	for field, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		p.titles[field] = title
	}
	return p
}

// RequiresPresence reports whether field is listed as required.
func (p *Presence) RequiresPresence(field string) bool {
	if p == nil {
		return false
	}
	_, ok := p.required[field]
	return ok
}

// DisplayName returns the schema title declared for field.
func (p *Presence) DisplayName(field string) (string, bool) {
	if p == nil {
		return "", false
	}
	title, ok := p.titles[field]
	return title, ok
}

// Required lists the required fields, sorted.
func (p *Presence) Required() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.required))
	for field := range p.required {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// PresenceFromSchema reads a standalone JSON schema object (the shape used
// under components/schemas) and returns its presence metadata.
func PresenceFromSchema(data []byte) (*Presence, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("model: schema payload is empty")
	}
	var schema openapi3.Schema
	if err := schema.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("model: decode schema: %w", err)
	}
	return presenceFromSchema(&schema), nil
}

// PresenceFromDocument loads an OpenAPI document and returns the presence
// metadata of the named component schema.
func PresenceFromDocument(ctx context.Context, data []byte, schemaName string) (*Presence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("model: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("model: load document: %w", err)
	}

	ref, ok := componentSchemas(doc)[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("model: schema %q not found in document", schemaName)
	}
	return presenceFromSchema(ref.Value), nil
}

func presenceFromSchema(schema *openapi3.Schema) *Presence {
	titles := make(map[string]string, len(schema.Properties))
	for name, property := range schema.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		if title := strings.TrimSpace(property.Value.Title); title != "" {
			titles[name] = title
		}
	}
	return NewPresence(schema.Required, titles)
}

func componentSchemas(doc *openapi3.T) openapi3.Schemas {
	if doc == nil || doc.Components == nil {
		return nil
	}
	return doc.Components.Schemas
}
