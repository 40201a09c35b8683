package systems

import (
	"unicode"

	"github.com/automoto/gridmenu/components"
	cfg "github.com/automoto/gridmenu/config"
	"github.com/automoto/gridmenu/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Logical keys in the order their events are emitted within a frame
var logicalKeys = []input.Key{
	input.KeyUp,
	input.KeyDown,
	input.KeyLeft,
	input.KeyRight,
	input.KeyBackspace,
	input.KeyEnter,
	input.KeyEscape,
}

// Reusable buffers to avoid allocations every frame
var (
	eventBuf []input.Event
	charBuf  []rune
)

// Backspace auto-repeat, in ticks
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// PollEvents converts this frame's keyboard and window state into events.
// The returned slice is only valid until the next call.
func PollEvents() []input.Event {
	eventBuf = eventBuf[:0]

	if ebiten.IsWindowBeingClosed() {
		eventBuf = append(eventBuf, input.Quit())
	}

	for _, k := range logicalKeys {
		for _, key := range cfg.Input.Bindings[k] {
			if keyTriggered(k, key) {
				eventBuf = append(eventBuf, input.Press(k))
				break
			}
		}
	}

	charBuf = ebiten.AppendInputChars(charBuf[:0])
	for _, r := range charBuf {
		if unicode.IsPrint(r) {
			eventBuf = append(eventBuf, input.Typed(r))
		}
	}
	return eventBuf
}

// keyTriggered reports a fresh press, or an auto-repeat for backspace.
func keyTriggered(k input.Key, key ebiten.Key) bool {
	if k != input.KeyBackspace {
		return inpututil.IsKeyJustPressed(key)
	}
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// SetEvents hands a frame's events to the scene's systems.
func SetEvents(e *ecs.ECS, events []input.Event) {
	getOrCreateInput(e).Events = events
}

// takeEvents returns and clears the events stored for this frame
func takeEvents(e *ecs.ECS) []input.Event {
	in := getOrCreateInput(e)
	events := in.Events
	in.Events = nil
	return events
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
