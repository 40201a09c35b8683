// Package input defines the discrete events delivered to the menu and
// gameplay subsystems once per frame. It has no dependency on ebitengine so
// the subsystems can be driven from tests.
package input

// EventType discriminates the kind of a frame event
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventQuit
)

// Key is a logical key carried by an EventKeyDown event
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyChar // printable character, see Event.Char
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyChar:      "char",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single input event. Char is only set when Key is KeyChar.
type Event struct {
	Type EventType
	Key  Key
	Char rune
}

// Press returns a key-down event for k
func Press(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// Typed returns a key-down event carrying a typed character
func Typed(r rune) Event {
	return Event{Type: EventKeyDown, Key: KeyChar, Char: r}
}

// Quit returns the window-close event
func Quit() Event {
	return Event{Type: EventQuit}
}

// IsKey reports whether e is a key-down event for k
func (e Event) IsKey(k Key) bool {
	return e.Type == EventKeyDown && e.Key == k
}

// HasQuit reports whether any event in the batch asks to close the application
func HasQuit(events []Event) bool {
	for _, e := range events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}
