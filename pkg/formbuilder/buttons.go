package formbuilder

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/config"
	"github.com/goliatone/go-formkit/pkg/tags"
)

// Purpose is the intent of a button or link.
type Purpose string

const (
	PurposeNew    Purpose = "new"
	PurposeSave   Purpose = "save"
	PurposeCancel Purpose = "cancel"
	PurposeEdit   Purpose = "edit"
	PurposeDelete Purpose = "delete"
)

type element int

const (
	elementLink element = iota
	elementButton
)

type purposeDescriptor struct {
	element element
	icon    string
	nature  string
}

var purposeTable = map[Purpose]purposeDescriptor{
	PurposeNew:    {element: elementLink, icon: "add", nature: "positive"},
	PurposeSave:   {element: elementButton, icon: "tick", nature: "positive"},
	PurposeCancel: {element: elementLink, icon: "arrow_undo"},
	PurposeEdit:   {element: elementLink, icon: "pencil"},
	PurposeDelete: {element: elementButton, icon: "cross", nature: "negative"},
}

// ParsePurpose resolves a purpose name.
func ParsePurpose(name string) (Purpose, error) {
	purpose := Purpose(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := purposeTable[purpose]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPurpose, name)
	}
	return purpose, nil
}

// Purposes returns every supported purpose.
func Purposes() []Purpose {
	return []Purpose{PurposeNew, PurposeSave, PurposeCancel, PurposeEdit, PurposeDelete}
}

// ButtonOptions controls one button or link.
type ButtonOptions struct {
	// Label replaces the capitalised purpose name.
	Label string
	// Icon replaces the purpose's icon name.
	Icon string
	// NoIcon drops the icon image from the legend.
	NoIcon bool
	// URL is the link target; links default to href="".
	URL   string
	Attrs tags.Attributes
}

// ParseButtonOptions converts a loosely typed option map. "icon" accepts an
// icon name or false, and null keeps the purpose's icon; label and url are consumed; the rest become
// attributes.
func ParseButtonOptions(raw map[string]any) (ButtonOptions, error) {
	var opts ButtonOptions
	for key, value := range raw {
		switch key {
		case "label":
			opts.Label = stringOption(value)
		case "url":
			opts.URL = stringOption(value)
		case "icon":
			switch v := value.(type) {
			case bool:
				opts.NoIcon = !v
			case nil:
			case string:
				opts.Icon = v
			default:
				return ButtonOptions{}, fmt.Errorf("formbuilder: option %q: expected bool or string, got %T", key, value)
			}
		default:
			if opts.Attrs == nil {
				opts.Attrs = tags.Attributes{}
			}
			if attr, ok := attributeValue(key, value); ok {
				opts.Attrs[key] = attr
			}
		}
	}
	return opts, nil
}

// Button renders the button or link for purpose.
func (b *Builder) Button(purpose Purpose, opts ButtonOptions) (string, error) {
	return renderButton(b.legends(), purpose, opts, false)
}

// MustButton mirrors Button but panics on error.
func (b *Builder) MustButton(purpose Purpose, opts ButtonOptions) string {
	return Must(b.Button(purpose, opts))
}

func (b *Builder) New(opts ButtonOptions) (string, error) {
	return b.Button(PurposeNew, opts)
}

func (b *Builder) Save(opts ButtonOptions) (string, error) {
	return b.Button(PurposeSave, opts)
}

func (b *Builder) Cancel(opts ButtonOptions) (string, error) {
	return b.Button(PurposeCancel, opts)
}

func (b *Builder) Edit(opts ButtonOptions) (string, error) {
	return b.Button(PurposeEdit, opts)
}

func (b *Builder) Delete(opts ButtonOptions) (string, error) {
	return b.Button(PurposeDelete, opts)
}

// Buttons wraps the buttons produced inside fn in <div class="buttons">.
func (b *Builder) Buttons(fn func(group *ButtonGroup) error) (string, error) {
	group := &ButtonGroup{builder: b}
	if fn != nil {
		if err := fn(group); err != nil {
			return "", err
		}
	}
	return buttonsContainer(strings.Join(group.items, "")), nil
}

// LinkToForm renders purpose as a link, whatever its usual element, inside
// <div class="buttons">.
func (b *Builder) LinkToForm(purpose Purpose, opts ButtonOptions) (string, error) {
	link, err := renderButton(b.legends(), purpose, opts, true)
	if err != nil {
		return "", err
	}
	return buttonsContainer(link), nil
}

// LinkToForm renders a standalone form link using the built-in defaults.
func LinkToForm(purpose Purpose, opts ButtonOptions) (string, error) {
	defaults := config.Default()
	resolver := legendResolver{
		icon:  func(icon string) string { return iconPath(defaults.IconPath, icon) },
		label: func(p Purpose) string { return capitalize(string(p)) },
	}
	link, err := renderButton(resolver, purpose, opts, true)
	if err != nil {
		return "", err
	}
	return buttonsContainer(link), nil
}

// ButtonGroup collects buttons for Builder.Buttons.
type ButtonGroup struct {
	builder *Builder
	items   []string
}

// Button appends the button for purpose.
func (g *ButtonGroup) Button(purpose Purpose, opts ButtonOptions) error {
	html, err := g.builder.Button(purpose, opts)
	if err != nil {
		return err
	}
	g.items = append(g.items, html)
	return nil
}

// Link appends purpose rendered as a link.
func (g *ButtonGroup) Link(purpose Purpose, opts ButtonOptions) error {
	html, err := renderButton(g.builder.legends(), purpose, opts, true)
	if err != nil {
		return err
	}
	g.items = append(g.items, html)
	return nil
}

func (g *ButtonGroup) New(opts ButtonOptions) error    { return g.Button(PurposeNew, opts) }
func (g *ButtonGroup) Save(opts ButtonOptions) error   { return g.Button(PurposeSave, opts) }
func (g *ButtonGroup) Cancel(opts ButtonOptions) error { return g.Button(PurposeCancel, opts) }
func (g *ButtonGroup) Edit(opts ButtonOptions) error   { return g.Button(PurposeEdit, opts) }
func (g *ButtonGroup) Delete(opts ButtonOptions) error { return g.Button(PurposeDelete, opts) }

// Len reports how many items the group holds.
func (g *ButtonGroup) Len() int {
	return len(g.items)
}

type legendResolver struct {
	icon  func(string) string
	label func(Purpose) string
}

func (b *Builder) legends() legendResolver {
	return legendResolver{icon: b.iconURL, label: b.buttonLabel}
}

func renderButton(resolve legendResolver, purpose Purpose, opts ButtonOptions, forceLink bool) (string, error) {
	descriptor, ok := purposeTable[purpose]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPurpose, string(purpose))
	}

	label := opts.Label
	if label == "" {
		label = resolve.label(purpose)
	}
	legend := tags.Escape(label)
	if !opts.NoIcon {
		icon := opts.Icon
		if icon == "" {
			icon = descriptor.icon
		}
		if icon != "" {
			img := tags.Tag("img", tags.Attributes{"alt": "", "src": resolve.icon(icon)})
			legend = img + " " + legend
		}
	}

	attrs := tags.Attributes{}
	if descriptor.nature != "" {
		attrs = attrs.AddClass(descriptor.nature)
	}
	if descriptor.element == elementButton && !forceLink {
		attrs["type"] = "submit"
		return tags.ContentTag("button", legend, attrs.Merge(opts.Attrs)), nil
	}
	attrs["href"] = opts.URL
	return tags.ContentTag("a", legend, attrs.Merge(opts.Attrs)), nil
}

func buttonsContainer(content string) string {
	return tags.ContentTag("div", content, tags.Attributes{"class": "buttons"})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
