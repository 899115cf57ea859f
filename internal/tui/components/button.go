package components

// Button is an action control with at most one activation handler.
type Button struct {
	label   string
	handler func()
	seq     uint64
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// Subscribe binds handler to activation, replacing any previous handler.
// The returned func releases this subscription; calling it after a newer
// Subscribe has no effect.
func (b *Button) Subscribe(handler func()) (unsubscribe func()) {
	b.seq++
	id := b.seq
	b.handler = handler
	return func() {
		if b.seq == id {
			b.handler = nil
		}
	}
}

// Bound reports whether an activation handler is attached.
func (b *Button) Bound() bool {
	return b.handler != nil
}

// Activate delivers an activation event. It reports whether a handler ran.
func (b *Button) Activate() bool {
	if b.handler == nil {
		return false
	}
	b.handler()
	return true
}
