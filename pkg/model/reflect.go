package model

import (
	"errors"
	"reflect"
	"strings"
)

// StructObject adapts a tagged Go struct to BoundObject. Field keys come from
// the `form` tag (or the snake_cased Go name), presence from a `validate` tag
// containing "required", and display names from a `label` tag.
type StructObject struct {
	name     string
	value    reflect.Value
	index    map[string][]int
	required map[string]bool
	labels   map[string]string
	errors   ErrorBag
}

var (
	_ BoundObject       = (*StructObject)(nil)
	_ PresenceReflector = (*StructObject)(nil)
	_ DisplayNamer      = (*StructObject)(nil)
)

// Reflect wraps a struct (or pointer to struct) as a bound object named name.
func Reflect(name string, v any) (*StructObject, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.New("model: reflect: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.New("model: reflect: value must be a struct")
	}

	obj := &StructObject{
		name:     strings.TrimSpace(name),
		value:    rv,
		index:    make(map[string][]int),
		required: make(map[string]bool),
		labels:   make(map[string]string),
	}
	obj.collect(rv.Type(), nil)
	return obj, nil
}

// MustReflect panics when Reflect fails. Useful in tests and init code.
func MustReflect(name string, v any) *StructObject {
	obj, err := Reflect(name, v)
	if err != nil {
		panic(err)
	}
	return obj
}

// WithErrors attaches validation messages.
func (s *StructObject) WithErrors(bag ErrorBag) *StructObject {
	s.errors = bag
	return s
}

func (s *StructObject) ObjectName() string {
	return s.name
}

func (s *StructObject) Value(field string) (any, bool) {
	idx, ok := s.index[field]
	if !ok {
		return nil, false
	}
	fv, err := s.value.FieldByIndexErr(idx)
	if err != nil {
		return nil, false
	}
	return fv.Interface(), true
}

func (s *StructObject) Errors(field string) []string {
	return s.errors.For(field)
}

func (s *StructObject) RequiresPresence(field string) bool {
	return s.required[field]
}

func (s *StructObject) DisplayName(field string) (string, bool) {
	label, ok := s.labels[field]
	return label, ok
}

func (s *StructObject) collect(rt reflect.Type, parent []int) {
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		index := append(append([]int(nil), parent...), i)

		if sf.Anonymous && sf.IsExported() && sf.Type.Kind() == reflect.Struct && sf.Tag.Get("form") == "" {
			s.collect(sf.Type, index)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		key := strings.TrimSpace(strings.Split(sf.Tag.Get("form"), ",")[0])
		if key == "-" {
			continue
		}
		if key == "" {
			key = snakeCase(sf.Name)
		}
		if _, exists := s.index[key]; exists {
			continue
		}
		s.index[key] = index

		if hasRule(sf.Tag.Get("validate"), "required") {
			s.required[key] = true
		}
		if label := strings.TrimSpace(sf.Tag.Get("label")); label != "" {
			s.labels[key] = label
		}
	}
}

func hasRule(tag, rule string) bool {
	for _, part := range strings.FieldsFunc(tag, func(r rune) bool { return r == ',' || r == '|' }) {
		if strings.TrimSpace(part) == rule {
			return true
		}
	}
	return false
}

func snakeCase(name string) string {
	return strings.ReplaceAll(strings.ToLower(splitCamel(name)), " ", "_")
}
