package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// AppConfig contains startup options. main overrides these from flags.
type AppConfig struct {
	MenusDir     string // directory holding menu definitions
	StartMenu    string // menu shown at startup
	ConfirmMenu  string // menu forced while in game mode
	StoreBackend string // "gdata", "sqlite" or "memory"
	StorePath    string // sqlite database file
	AppName      string // gdata application name
}

// MenuConfig contains menu rendering configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ToggleOnColor   color.RGBA
	ToggleOffColor  color.RGBA
	HighlightColor  color.RGBA
	EditBoxColor    color.RGBA
	ItemWidth       int
	ItemHeight      int
	HighlightStroke float32
	HighlightTween  float32 // seconds for the highlight to reach a new cell
	DefaultTextSize int     // used when an item has no text_size
}

// GameConfig contains game-mode screen configuration values
type GameConfig struct {
	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
	HUDPanelColor   color.RGBA
	Hint            string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Global configuration instances
var C *Config
var App AppConfig
var Menu MenuConfig
var Game GameConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkPanel    = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	App = AppConfig{
		MenusDir:     "menus",
		StartMenu:    "main_menu",
		ConfirmMenu:  "in_game_exit_confirm",
		StoreBackend: "gdata",
		StorePath:    "gridmenu.db",
		AppName:      "gridmenu",
	}

	Menu = MenuConfig{
		BackgroundColor: Black,
		PanelColor:      White,
		TitleColor:      White,
		TextColor:       Black,
		ToggleOnColor:   Green,
		ToggleOffColor:  Red,
		HighlightColor:  Blue,
		EditBoxColor:    White,
		ItemWidth:       200,
		ItemHeight:      50,
		HighlightStroke: 2,
		HighlightTween:  0.12,
		DefaultTextSize: 24,
	}

	Game = GameConfig{
		BackgroundColor: Black,
		HUDTextColor:    White,
		HUDPanelColor:   DarkPanel,
		Hint:            "Esc: Menu",
	}
}
