package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/modetoggle/internal/tui/components"
)

// Registry errors.
var (
	ErrUnknownTag     = errors.New("unknown element tag")
	ErrAlreadyDefined = errors.New("element tag already defined")
	ErrInvalidTag     = errors.New("invalid element tag")
)

// Element is a widget the host can mount and unmount.
type Element interface {
	Tag() string
	Connect()
	Disconnect()
	ObservedAttributes() []string
	SetAttribute(name, value string)
	View(width int) string
}

// Activator is implemented by elements that react to activation events.
type Activator interface {
	Activate() bool
	// ButtonBounds returns the inclusive cell rectangle of the action
	// control within View(width).
	ButtonBounds(width int) (left, top, right, bottom int)
}

// ElementOptions are passed to a factory when the host creates an element.
type ElementOptions struct {
	Tag       string
	Title     string
	Content   string
	Logger    zerolog.Logger
	Lifecycle components.Lifecycle
}

// Factory builds an element instance.
type Factory func(opts ElementOptions) Element

// Registry maps tag names to element factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry with the mode widget defined under
// components.DefaultTag.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	if err := registry.Define(components.DefaultTag, NewModeWidgetElement); err != nil {
		panic(err)
	}
	return registry
}

// NewModeWidgetElement is the factory for the mode widget.
func NewModeWidgetElement(opts ElementOptions) Element {
	return components.NewModeWidget(components.ModeWidgetOptions{
		Tag:       opts.Tag,
		Title:     opts.Title,
		Content:   opts.Content,
		Logger:    opts.Logger,
		Lifecycle: opts.Lifecycle,
	})
}

// Define registers factory under tag. Tags must be lowercase and contain a
// hyphen.
func (r *Registry) Define(tag string, factory Factory) error {
	if err := validateTag(tag); err != nil {
		return err
	}
	if factory == nil {
		return fmt.Errorf("factory is required for %q", tag)
	}
	if _, exists := r.factories[tag]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyDefined, tag)
	}
	r.factories[tag] = factory
	return nil
}

// Create instantiates the element registered under tag.
func (r *Registry) Create(tag string, opts ElementOptions) (Element, error) {
	factory, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	opts.Tag = tag
	return factory(opts), nil
}

// Tags returns the defined tag names in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func validateTag(tag string) error {
	switch {
	case tag == "":
		return fmt.Errorf("%w: tag is required", ErrInvalidTag)
	case !strings.Contains(tag, "-"):
		return fmt.Errorf("%w: %q must contain a hyphen", ErrInvalidTag, tag)
	case tag != strings.ToLower(tag):
		return fmt.Errorf("%w: %q must be lowercase", ErrInvalidTag, tag)
	case strings.ContainsAny(tag, " \t\n"):
		return fmt.Errorf("%w: %q must not contain whitespace", ErrInvalidTag, tag)
	}
	return nil
}
