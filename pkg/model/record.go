package model

import "strings"

// Record is a map-backed BoundObject, handy for handlers that bind form
// posts without a dedicated struct.
type Record struct {
	name     string
	values   map[string]any
	errors   ErrorBag
	required map[string]bool
	labels   map[string]string
	presence *Presence
}

var (
	_ BoundObject       = (*Record)(nil)
	_ PresenceReflector = (*Record)(nil)
	_ DisplayNamer      = (*Record)(nil)
)

// NewRecord creates an empty record using name as its param key.
func NewRecord(name string) *Record {
	return &Record{
		name:   strings.TrimSpace(name),
		values: make(map[string]any),
	}
}

// Set stores the current value for field.
func (r *Record) Set(field string, value any) *Record {
	r.values[field] = value
	return r
}

// SetValues stores every entry of values.
func (r *Record) SetValues(values map[string]any) *Record {
	for field, value := range values {
		r.values[field] = value
	}
	return r
}

// AddError records a validation message for field.
func (r *Record) AddError(field, msg string) *Record {
	r.errors.Add(field, msg)
	return r
}

// WithErrors replaces the record's messages with bag.
func (r *Record) WithErrors(bag ErrorBag) *Record {
	r.errors = bag
	return r
}

// Require marks fields as needing presence.
func (r *Record) Require(fields ...string) *Record {
	if r.required == nil {
		r.required = make(map[string]bool, len(fields))
	}
	for _, field := range fields {
		r.required[field] = true
	}
	return r
}

// Label declares the display name for field.
func (r *Record) Label(field, label string) *Record {
	if r.labels == nil {
		r.labels = make(map[string]string)
	}
	r.labels[field] = label
	return r
}

// WithPresence attaches schema-derived presence and display-name metadata.
// Explicit Require/Label calls take precedence.
func (r *Record) WithPresence(p *Presence) *Record {
	r.presence = p
	return r
}

// ErrorBag exposes the record's messages.
func (r *Record) ErrorBag() ErrorBag {
	return r.errors
}

func (r *Record) ObjectName() string {
	return r.name
}

func (r *Record) Value(field string) (any, bool) {
	value, ok := r.values[field]
	return value, ok
}

func (r *Record) Errors(field string) []string {
	return r.errors.For(field)
}

func (r *Record) RequiresPresence(field string) bool {
	if required, ok := r.required[field]; ok {
		return required
	}
	return r.presence.RequiresPresence(field)
}

func (r *Record) DisplayName(field string) (string, bool) {
	if label, ok := r.labels[field]; ok {
		return label, true
	}
	return r.presence.DisplayName(field)
}
