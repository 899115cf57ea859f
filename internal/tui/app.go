// Package tui hosts the mode widget in a terminal user interface.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/modetoggle/internal/tui/components"
	"github.com/opencode-ai/modetoggle/internal/tui/styles"
)

// Config configures the host program.
type Config struct {
	// Tag selects the element to mount. Defaults to components.DefaultTag.
	Tag     string
	Title   string
	Content string
	// Something is the initial value of the observed attribute; empty
	// leaves it unset.
	Something string
	// Registry resolves Tag. Defaults to DefaultRegistry().
	Registry  *Registry
	Logger    zerolog.Logger
	Lifecycle components.Lifecycle
	AltScreen bool
	Mouse     bool
}

const (
	minWidth  = 30
	minHeight = 8
)

// RunWithConfig launches the host program and blocks until it exits.
func RunWithConfig(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	// The element is a pointer, so teardown works on the final model too.
	defer m.element.Disconnect()

	_, err = tea.NewProgram(m, opts...).Run()
	return err
}

// Render mounts an element, delivers the given number of activation
// events, and returns a single frame at width. It is the non-interactive
// counterpart of RunWithConfig.
func Render(cfg Config, activations, width int) (string, error) {
	if activations < 0 {
		return "", fmt.Errorf("activations must be non-negative, got %d", activations)
	}
	element, err := mountElement(cfg)
	if err != nil {
		return "", err
	}
	defer element.Disconnect()

	element.Connect()
	if cfg.Something != "" {
		element.SetAttribute(components.AttrSomething, cfg.Something)
	}
	if activations > 0 {
		activator, ok := element.(Activator)
		if !ok {
			return "", fmt.Errorf("element %q does not accept activation", element.Tag())
		}
		for i := 0; i < activations; i++ {
			activator.Activate()
		}
	}
	return element.View(width), nil
}

func mountElement(cfg Config) (Element, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	tag := cfg.Tag
	if tag == "" {
		tag = components.DefaultTag
	}
	element, err := registry.Create(tag, ElementOptions{
		Title:     cfg.Title,
		Content:   cfg.Content,
		Logger:    cfg.Logger,
		Lifecycle: cfg.Lifecycle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create element: %w", err)
	}
	return element, nil
}

type model struct {
	width     int
	height    int
	chrome    styles.Chrome
	keys      keyMap
	help      help.Model
	element   Element
	something string
	attrSeq   int
	logger    zerolog.Logger
}

func newModel(cfg Config) (model, error) {
	element, err := mountElement(cfg)
	if err != nil {
		return model{}, err
	}
	return model{
		chrome:    styles.DefaultChrome(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		element:   element,
		something: cfg.Something,
		logger:    cfg.Logger,
	}, nil
}

func (m model) Init() tea.Cmd {
	m.element.Connect()
	if m.something != "" {
		m.element.SetAttribute(components.AttrSomething, m.something)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.element.Disconnect()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.activate()
		case key.Matches(msg, m.keys.Attr):
			m.attrSeq++
			m.element.SetAttribute(components.AttrSomething, strconv.Itoa(m.attrSeq))
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		// X10 reports releases without a button.
		released := msg.Action == tea.MouseActionRelease && (msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone)
		if released && m.hitsButton(msg.X, msg.Y) {
			m.activate()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m model) activate() {
	activator, ok := m.element.(Activator)
	if !ok {
		return
	}
	if !activator.Activate() {
		m.logger.Debug().Str("tag", m.element.Tag()).Msg("activation ignored, element has no handler")
	}
}

// hitsButton reports whether cell (x, y) falls on the element's action
// control. The element is drawn from the top-left cell.
func (m model) hitsButton(x, y int) bool {
	if m.tooSmall() {
		return false
	}
	activator, ok := m.element.(Activator)
	if !ok {
		return false
	}
	left, top, right, bottom := activator.ButtonBounds(m.width)
	return x >= left && x <= right && y >= top && y <= bottom
}

// tooSmall reports whether View shows the resize hint instead of the element.
func (m model) tooSmall() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return m.width < minWidth || m.height < minHeight
}

func (m model) View() string {
	if m.tooSmall() {
		return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
	}

	lines := []string{
		m.element.View(m.width),
		"",
		m.help.View(m.keys),
	}
	if value, ok := m.attribute(); ok {
		lines = append(lines, m.chrome.Muted.Render(fmt.Sprintf("%s=%s", components.AttrSomething, value)))
	}

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) attribute() (string, bool) {
	reader, ok := m.element.(interface {
		Attribute(name string) (string, bool)
	})
	if !ok {
		return "", false
	}
	return reader.Attribute(components.AttrSomething)
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.chrome.Warning.Render(message),
		m.chrome.Muted.Render(hint),
		m.chrome.Muted.Render("Press q to quit."),
	}
}
