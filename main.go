package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/gridmenu/config"
	"github.com/automoto/gridmenu/fonts"
	"github.com/automoto/gridmenu/gameplay"
	"github.com/automoto/gridmenu/gamestate"
	"github.com/automoto/gridmenu/menu"
	"github.com/automoto/gridmenu/scenes"
	"github.com/automoto/gridmenu/systems"
	"github.com/automoto/gridmenu/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds    image.Rectangle
	router    *gamestate.Router
	menuScene *scenes.MenuScene
	gameScene *scenes.GameScene
	mode      gamestate.Mode
}

func (g *Game) Update() error {
	mode, err := g.router.Frame(systems.PollEvents())
	g.mode = mode
	if errors.Is(err, gamestate.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene().Draw(screen)
}

func (g *Game) scene() Scene {
	if g.mode == gamestate.ModeGame {
		return g.gameScene
	}
	return g.menuScene
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func parseFlags() {
	flag.StringVar(&config.App.MenusDir, "menus", config.App.MenusDir, "directory holding menu definitions")
	flag.StringVar(&config.App.StartMenu, "start", config.App.StartMenu, "menu shown at startup")
	flag.StringVar(&config.App.ConfirmMenu, "confirm", config.App.ConfirmMenu, "menu shown when leaving the game")
	flag.StringVar(&config.App.StoreBackend, "store", config.App.StoreBackend, "settings store: gdata, sqlite or memory")
	flag.StringVar(&config.App.StorePath, "db", config.App.StorePath, "sqlite database file")
	flag.StringVar(&config.App.AppName, "app", config.App.AppName, "gdata application name")
	flag.Parse()
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 32); err != nil {
		return err
	}
	return fonts.LoadItemFont(goregular.TTF)
}

func main() {
	parseFlags()

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	store, closeStore, err := systems.OpenStore(config.App)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	modeFlag := gamestate.NewFlag(store)
	if err := modeFlag.Write(gamestate.ModeMenu); err != nil {
		log.Printf("Warning: Could not reset game state: %v", err)
	}

	persister := menu.NewPersister(store)
	registry, err := menu.LoadMenus(os.DirFS(config.App.MenusDir), ".", persister)
	if err != nil {
		log.Fatalf("Failed to load menus: %v", err)
	}
	machine := menu.NewMachine(registry, persister, modeFlag, config.App.StartMenu)

	hud, err := ui.NewGameHUD()
	if err != nil {
		log.Fatalf("Failed to build HUD: %v", err)
	}

	menuScene := scenes.NewMenuScene(machine)
	gameScene := scenes.NewGameScene(gameplay.New(modeFlag), hud)
	g := &Game{
		router:    gamestate.NewRouter(modeFlag, menuScene, gameScene, config.App.ConfirmMenu),
		menuScene: menuScene,
		gameScene: gameScene,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("gridmenu")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
