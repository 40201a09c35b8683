package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/gridmenu/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameHUD is the ebitenui overlay shown while the game is running
type GameHUD struct {
	UI *ebitenui.UI

	hintLabel  *widget.Label
	frameLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewGameHUD builds the HUD widgets
func NewGameHUD() (*GameHUD, error) {
	hud := &GameHUD{}
	if err := hud.loadFonts(); err != nil {
		return nil, err
	}
	hud.buildUI()
	return hud, nil
}

func (h *GameHUD) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load hud font: %w", err)
	}
	h.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	h.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (h *GameHUD) buildUI() {
	// Transparent root so the game scene shows through
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Bar along the top edge
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Game.HUDPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	h.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.Game.Hint, &h.normalFace, &widget.LabelColor{
			Idle: cfg.Game.HUDTextColor,
		}),
	)
	h.frameLabel = widget.NewLabel(
		widget.LabelOpts.Text(frameText(0), &h.smallFace, &widget.LabelColor{
			Idle: cfg.Game.HUDTextColor,
		}),
	)
	bar.AddChild(h.hintLabel)
	bar.AddChild(h.frameLabel)
	root.AddChild(bar)

	h.UI = &ebitenui.UI{Container: root}
}

// SetFrames updates the frame counter shown in the HUD
func (h *GameHUD) SetFrames(n int) {
	h.frameLabel.Label = frameText(n)
}

func (h *GameHUD) Update() {
	h.UI.Update()
}

func (h *GameHUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

func frameText(n int) string {
	return fmt.Sprintf("Frames: %d", n)
}
