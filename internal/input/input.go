// Package input abstracts keyboard event delivery so views can register
// listeners on mount and drop them on unmount.
package input

// Key names follow the browser KeyboardEvent.key values the portal reacts to.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = " "
	KeyEscape     = "Escape"
)

// KeySource delivers key events to subscribers. Subscribe returns a cancel
// function; a cancelled subscriber receives nothing, so input meant for a
// different view is never handled by an unmounted one.
type KeySource interface {
	Subscribe(handler func(key string)) (cancel func())
}

// Fake is an in-memory KeySource for tests.
type Fake struct {
	handlers map[int]func(string)
	next     int
}

// NewFake returns an empty fake key source.
func NewFake() *Fake {
	return &Fake{handlers: make(map[int]func(string))}
}

func (f *Fake) Subscribe(handler func(key string)) func() {
	id := f.next
	f.next++
	f.handlers[id] = handler
	return func() { delete(f.handlers, id) }
}

// Press delivers a key event to all current subscribers.
func (f *Fake) Press(key string) {
	for _, h := range f.handlers {
		h(key)
	}
}

// SubscriberCount reports how many subscribers are registered.
func (f *Fake) SubscriberCount() int { return len(f.handlers) }
