// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/modetoggle/internal/mode"
	"github.com/opencode-ai/modetoggle/internal/tui/styles"
)

const (
	// DefaultTag is the registry name of the mode widget.
	DefaultTag = "my-component"
	// DefaultTitle is the heading rendered at the top of the container.
	DefaultTitle = "My Component"

	// AttrSomething is the only attribute the widget observes.
	AttrSomething = "something"
)

// Lifecycle receives widget lifecycle notifications.
type Lifecycle interface {
	Connected(widgetID, tag string)
	Disconnected(widgetID, tag string)
	AttributeChanged(widgetID, tag, attr, oldValue, newValue string)
	ModeToggled(widgetID, tag, previous, current string)
}

// ModeWidgetOptions configure a ModeWidget.
type ModeWidgetOptions struct {
	// ID identifies the instance in logs and the journal. Generated when empty.
	ID string
	// Tag is the registry name the widget was created under.
	Tag string
	// Title is the container heading. Defaults to DefaultTitle.
	Title string
	// Content is the slotted body rendered under the title.
	Content   string
	Logger    zerolog.Logger
	Lifecycle Lifecycle
}

// ModeWidget is a labelled container with a light/dark toggle button.
type ModeWidget struct {
	id        string
	tag       string
	title     string
	content   string
	logger    zerolog.Logger
	lifecycle Lifecycle

	toggle  *mode.Toggle
	scope   *styles.Scope
	classes ClassList
	button  *Button
	// modeLabel is the label of the mode the button switches to.
	modeLabel string

	attributes  map[string]string
	connected   bool
	unsubscribe func()
}

// NewModeWidget builds the widget in light mode with its handler bound.
func NewModeWidget(opts ModeWidgetOptions) *ModeWidget {
	if opts.ID == "" {
		opts.ID = uuid.New().String()
	}
	if opts.Tag == "" {
		opts.Tag = DefaultTag
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	w := &ModeWidget{
		id:         opts.ID,
		tag:        opts.Tag,
		title:      opts.Title,
		content:    opts.Content,
		lifecycle:  opts.Lifecycle,
		toggle:     mode.New(),
		scope:      styles.NewScope(),
		attributes: make(map[string]string),
	}
	w.logger = opts.Logger.With().Str("widget_id", w.id).Str("tag", w.tag).Logger()

	w.modeLabel = w.toggle.NextLabel()
	w.button = NewButton(w.buttonText())
	w.unsubscribe = w.button.Subscribe(w.toggleMode)
	w.classes.Add(w.toggle.CurrentLabel())

	return w
}

// ObservedAttributes lists the attribute names whose changes are reported.
func (w *ModeWidget) ObservedAttributes() []string {
	return []string{AttrSomething}
}

// ID returns the instance identifier.
func (w *ModeWidget) ID() string { return w.id }

// Tag returns the registry name.
func (w *ModeWidget) Tag() string { return w.tag }

// Mode returns the label of the active mode.
func (w *ModeWidget) Mode() string { return w.toggle.CurrentLabel() }

// Classes returns the container class tags.
func (w *ModeWidget) Classes() []string { return w.classes.Items() }

// Button returns the action control.
func (w *ModeWidget) Button() *Button { return w.button }

// IsConnected reports whether the widget is attached to a host.
func (w *ModeWidget) IsConnected() bool { return w.connected }

// Connect attaches the widget to a host. A widget reconnected after
// Disconnect gets its activation handler bound again.
func (w *ModeWidget) Connect() {
	if w.connected {
		return
	}
	w.connected = true
	if w.unsubscribe == nil {
		w.unsubscribe = w.button.Subscribe(w.toggleMode)
	}
	w.logger.Info().Msg("connected")
	if w.lifecycle != nil {
		w.lifecycle.Connected(w.id, w.tag)
	}
}

// Disconnect detaches the widget and releases the activation handler.
func (w *ModeWidget) Disconnect() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	if !w.connected {
		return
	}
	w.connected = false
	w.logger.Info().Msg("disconnected")
	if w.lifecycle != nil {
		w.lifecycle.Disconnected(w.id, w.tag)
	}
}

// Attribute returns the current value of an attribute.
func (w *ModeWidget) Attribute(name string) (string, bool) {
	value, ok := w.attributes[name]
	return value, ok
}

// SetAttribute stores an attribute and notifies AttributeChanged when the
// name is observed.
func (w *ModeWidget) SetAttribute(name, value string) {
	old := w.attributes[name]
	w.attributes[name] = value
	if slices.Contains(w.ObservedAttributes(), name) {
		w.AttributeChanged(name, old, value)
	}
}

// AttributeChanged reports a change to an observed attribute. The widget
// only logs it.
func (w *ModeWidget) AttributeChanged(name, oldValue, newValue string) {
	if !slices.Contains(w.ObservedAttributes(), name) {
		return
	}
	w.logger.Info().Str("attr", name).Str("value", newValue).Msgf("attr: %s and value: %s", name, newValue)
	if w.lifecycle != nil {
		w.lifecycle.AttributeChanged(w.id, w.tag, name, oldValue, newValue)
	}
}

// Activate delivers an activation event to the button. It reports whether
// the toggle ran.
func (w *ModeWidget) Activate() bool {
	return w.button.Activate()
}

func (w *ModeWidget) toggleMode() {
	previous, current := w.toggle.Toggle()
	w.modeLabel = w.toggle.NextLabel()
	w.classes.Remove(previous)
	w.classes.Add(current)
	w.button.SetLabel(w.buttonText())

	w.logger.Debug().Str("previous", previous).Str("current", current).Msg("mode toggled")
	if w.lifecycle != nil {
		w.lifecycle.ModeToggled(w.id, w.tag, previous, current)
	}
}

func (w *ModeWidget) buttonText() string {
	return fmt.Sprintf("Toggle %s mode", w.modeLabel)
}

// activeStyles returns the styles of the last class tag the scope knows.
func (w *ModeWidget) activeStyles() styles.Styles {
	items := w.classes.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if w.scope.Has(items[i]) {
			return w.scope.Class(items[i])
		}
	}
	return w.scope.Class(styles.LightTheme.Name)
}

// sections renders the stacked blocks inside the container at the given
// inner width: title, optional content, button.
func (w *ModeWidget) sections(inner int) []string {
	styleSet := w.activeStyles()

	block := func(style lipgloss.Style, text string) string {
		if inner > 0 {
			style = style.Width(inner)
		}
		return style.Render(text)
	}

	spacer := block(styleSet.Text, "")
	parts := []string{block(styleSet.Title, w.title), spacer}
	if strings.TrimSpace(w.content) != "" {
		parts = append(parts, block(styleSet.Text, w.content), spacer)
	}

	button := w.renderButton(styleSet)
	if inner > 0 {
		button = lipgloss.PlaceHorizontal(inner, lipgloss.Left, button, lipgloss.WithWhitespaceBackground(styleSet.Container.GetBackground()))
	}
	parts = append(parts, button)
	return parts
}

func (w *ModeWidget) renderButton(styleSet styles.Styles) string {
	label := fmt.Sprintf("Toggle %s mode", styleSet.ButtonKey.Render(w.modeLabel))
	return styleSet.Button.Render(label)
}

func innerWidth(width int) int {
	if width <= 0 {
		return 0
	}
	// One cell of padding on each side.
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	return inner
}

// View renders the container. A width of zero sizes it to the content.
func (w *ModeWidget) View(width int) string {
	styleSet := w.activeStyles()
	body := lipgloss.JoinVertical(lipgloss.Left, w.sections(innerWidth(width))...)
	container := styleSet.Container
	if width > 0 {
		container = container.Width(width)
	}
	return container.Render(body)
}

// ButtonBounds returns the inclusive cell rectangle the bordered button
// occupies within View(width), for pointer hit testing. Padding to the right
// of the button is excluded.
func (w *ModeWidget) ButtonBounds(width int) (left, top, right, bottom int) {
	styleSet := w.activeStyles()
	parts := w.sections(innerWidth(width))
	padTop, _, _, padLeft := styleSet.Container.GetPadding()

	top = padTop
	for _, part := range parts[:len(parts)-1] {
		top += lipgloss.Height(part)
	}
	bottom = top + lipgloss.Height(parts[len(parts)-1]) - 1

	left = padLeft
	right = left + lipgloss.Width(w.renderButton(styleSet)) - 1
	return left, top, right, bottom
}
