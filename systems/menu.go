package systems

import (
	"image"
	"image/color"

	"github.com/automoto/gridmenu/components"
	cfg "github.com/automoto/gridmenu/config"
	"github.com/automoto/gridmenu/fonts"
	"github.com/automoto/gridmenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateMenu feeds this frame's events to the menu state machine
func UpdateMenu(e *ecs.ECS) {
	data := GetMenu(e)
	if data == nil {
		return
	}
	data.Err = data.Machine.Update(takeEvents(e))
}

// UpdateHighlight moves the cursor highlight toward the selected cell
func UpdateHighlight(e *ecs.ECS) {
	data := GetMenu(e)
	if data == nil {
		return
	}
	view, ok := data.Machine.View()
	if !ok {
		return
	}
	hl := getOrCreateHighlight(e)
	target := menuLayout(view, cfg.C.Width, cfg.C.Height).Cell(view.Cursor)
	tx, ty := float32(target.Min.X), float32(target.Min.Y)

	switch {
	case hl.Menu != data.Machine.Current():
		// New menu: snap instead of sliding across screens
		hl.Menu = data.Machine.Current()
		hl.Target = view.Cursor
		hl.X, hl.Y = tx, ty
		hl.TweenX, hl.TweenY = nil, nil
	case hl.Target != view.Cursor:
		hl.Target = view.Cursor
		hl.TweenX = gween.New(hl.X, tx, cfg.Menu.HighlightTween, ease.OutQuad)
		hl.TweenY = gween.New(hl.Y, ty, cfg.Menu.HighlightTween, ease.OutQuad)
	}

	dt := 1 / float32(cfg.C.TPS)
	if hl.TweenX != nil {
		x, done := hl.TweenX.Update(dt)
		hl.X = x
		if done {
			hl.TweenX = nil
		}
	}
	if hl.TweenY != nil {
		y, done := hl.TweenY.Update(dt)
		hl.Y = y
		if done {
			hl.TweenY = nil
		}
	}
}

// DrawMenu renders the active menu grid
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Draw background
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	data := GetMenu(e)
	if data == nil {
		return
	}
	view, ok := data.Machine.View()
	if !ok {
		return
	}
	layout := menuLayout(view, width, height)

	if view.Title != "" {
		c := layout.TitleCenter(width)
		drawCentered(screen, view.Title, fonts.Title.Get(), c, cfg.Menu.TitleColor)
	}

	if !layout.Panel.Empty() {
		p := layout.Panel
		vector.FillRect(screen, float32(p.Min.X), float32(p.Min.Y), float32(p.Dx()), float32(p.Dy()), cfg.Menu.PanelColor, false)
	}

	for _, cell := range view.Cells {
		r := layout.Cell(cell.Position)
		if cell.Editing && cell.Kind == menu.KindInput {
			vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), cfg.Menu.EditBoxColor, false)
		}
		drawCentered(screen, cell.Text, fonts.Sized(textSize(cell)), centerOf(r), cellColor(cell))
	}

	drawHighlight(e, screen, view, layout)
}

func drawHighlight(e *ecs.ECS, screen *ebiten.Image, view menu.View, layout menu.Layout) {
	r := layout.Cell(view.Cursor)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	if hl := getHighlight(e); hl != nil && hl.Menu != "" {
		x, y = hl.X, hl.Y
	}
	vector.StrokeRect(screen, x, y, float32(layout.ItemWidth), float32(layout.ItemHeight),
		cfg.Menu.HighlightStroke, cfg.Menu.HighlightColor, false)
}

func menuLayout(view menu.View, width, height int) menu.Layout {
	return menu.NewLayout(view, width, height, cfg.Menu.ItemWidth, cfg.Menu.ItemHeight)
}

func cellColor(cell menu.Cell) color.Color {
	switch cell.Toggle {
	case menu.ToggleOn:
		return cfg.Menu.ToggleOnColor
	case menu.ToggleOff:
		return cfg.Menu.ToggleOffColor
	}
	return cfg.Menu.TextColor
}

func textSize(cell menu.Cell) int {
	if cell.TextSize > 0 {
		return cell.TextSize
	}
	return cfg.Menu.DefaultTextSize
}

func centerOf(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

// drawCentered draws s so its bounding box is centered on c
func drawCentered(screen *ebiten.Image, s string, face font.Face, c image.Point, clr color.Color) {
	if s == "" {
		return
	}
	b := text.BoundString(face, s)
	x := c.X - b.Min.X - b.Dx()/2
	y := c.Y - b.Min.Y - b.Dy()/2
	text.Draw(screen, s, face, x, y, clr)
}

// GetMenu returns the scene's menu component, or nil before the scene sets it up
func GetMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return nil
	}
	return components.Menu.Get(entry)
}

func getHighlight(e *ecs.ECS) *components.HighlightData {
	entry, ok := components.Highlight.First(e.World)
	if !ok {
		return nil
	}
	return components.Highlight.Get(entry)
}

func getOrCreateHighlight(e *ecs.ECS) *components.HighlightData {
	if hl := getHighlight(e); hl != nil {
		return hl
	}
	entry := e.World.Entry(e.World.Create(components.Highlight))
	return components.Highlight.Get(entry)
}
