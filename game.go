package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"clickfruit/internal/assets"
	"clickfruit/internal/config"
	"clickfruit/internal/gamemode"
)

const (
	SampleRate = 44100
	ScoreX     = 10
	ScoreY     = 10
	ScoreScale = 2 // basicfont is 13px tall, scale it up to stay readable
)

// Game adapts the click mode to ebiten's Update/Draw loop.
type Game struct {
	cfg    config.Config
	mode   *gamemode.ClickMode
	logger *log.Logger

	sprite   *ebiten.Image
	face     text.Face
	colBg    color.RGBA
	colScore color.RGBA

	// Audio
	audioCtx *audio.Context
	click    *audio.Player

	touchIDs []ebiten.TouchID
}

func NewGame(setup *gamemode.Setup, logger *log.Logger) (*Game, error) {
	cfg := setup.Config
	bg, err := config.ParseColor(cfg.Colors.Background)
	if err != nil {
		return nil, err
	}
	fg, err := config.ParseColor(cfg.Colors.Score)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		mode:     setup.Mode,
		logger:   logger,
		sprite:   ebiten.NewImageFromImage(setup.Sprite),
		face:     text.NewGoXFace(basicfont.Face7x13),
		colBg:    bg,
		colScore: fg,
	}

	// Opt-in: ebiten reports an unavailable audio device from the game loop.
	if cfg.Sound.Enabled {
		g.audioCtx = audio.NewContext(SampleRate)
		g.click = g.audioCtx.NewPlayerFromBytes(
			assets.ClickSound(SampleRate, cfg.Sound.Frequency, cfg.Sound.Length()))
		logger.Info("click sound enabled")
	}
	return g, nil
}

// Update: input and state (fixed TPS)
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.mode.Quit()
		g.logger.Info("window closed", "score", g.mode.Score(), "ticks", g.mode.Ticks())
		return ebiten.Termination
	}
	g.mode.Tick()

	// Presses are handled in arrival order: mouse first, then touches.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(ebiten.CursorPosition())
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		g.press(ebiten.TouchPosition(id))
	}
	return nil
}

func (g *Game) press(x, y int) {
	hit, ok := g.mode.Press(x, y)
	if !ok {
		return
	}

	g.logger.Debug("target hit",
		"removed", hit.Removed.ID,
		"spawned", hit.Spawned.ID,
		"x", hit.Spawned.X,
		"y", hit.Spawned.Y,
		"score", hit.Score,
	)

	if g.click != nil {
		if err := g.click.Rewind(); err != nil {
			g.logger.Warn("could not rewind click sound", "error", err)
			return
		}
		g.click.Play()
	}
}

// Draw: rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colBg)

	sw, sh := g.sprite.Bounds().Dx(), g.sprite.Bounds().Dy()
	for _, t := range g.mode.Targets() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(t.Size)/float64(sw), float64(t.Size)/float64(sh))
		op.GeoM.Translate(float64(t.X), float64(t.Y))
		screen.DrawImage(g.sprite, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(ScoreScale, ScoreScale)
	op.GeoM.Translate(ScoreX, ScoreY)
	op.ColorScale.ScaleWithColor(g.colScore)
	text.Draw(screen, fmt.Sprintf("Score: %d", g.mode.Score()), g.face, op)
}

// Layout: logical size matches the window, one unit per pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
