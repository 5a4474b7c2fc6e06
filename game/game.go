package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/orbit2d/assets"
	"github.com/meghashyamc/orbit2d/config"
	"github.com/meghashyamc/orbit2d/logger"
	"github.com/meghashyamc/orbit2d/loop"
	"github.com/meghashyamc/orbit2d/physics"
	"github.com/meghashyamc/orbit2d/viewport"
)

const starRadius = 10 // pixels

// Game is the window host. Each tick steps the simulation once in Update and
// draws the result in Draw; the frame is timed from the start of Update to
// the end of Draw.
type Game struct {
	cfg      *config.Config
	sim      *physics.Simulation
	driver   *loop.Driver
	view     viewport.Viewport
	logger   logger.Logger
	frame    loop.Frame
	stopping bool
}

func NewGame(cfg *config.Config, sim *physics.Simulation, driver *loop.Driver, log logger.Logger) *Game {
	view := viewport.Default(cfg.GetWindowWidth(), cfg.GetWindowHeight())
	view.Extent = cfg.GetViewExtent()
	view.DiameterScale = cfg.GetDiameterScale()
	view.MinDiameter = cfg.GetMinDiameter()

	g := &Game{
		cfg:    cfg,
		sim:    sim,
		driver: driver,
		view:   view,
		logger: log,
	}

	g.logger.Info("game initialized", "width", view.Width, "height", view.Height, "extent_meters", view.Extent)
	return g
}

func (g *Game) Run() error {
	g.logger.Info("starting simulation window")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	// one Update per Draw keeps physics and rendering in lockstep
	ebiten.SetTPS(ebiten.SyncWithFPS)
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.stopping = true
	}
	if g.stopping {
		g.logger.Info("stopping simulation", "frames", g.driver.Frames(), "simulated_days", g.sim.SimulatedTime()/86400)
		return ebiten.Termination
	}

	frame, err := g.driver.BeginFrame()
	if err != nil {
		g.logger.Error("simulation step failed", "err", err)
		return err
	}
	g.frame = frame
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.drawStar(screen)
	g.drawBodies(screen)
	g.drawHUD(screen)

	g.driver.EndFrame()
}

func (g *Game) drawStar(screen *ebiten.Image) {
	x, y := g.view.ToScreen(g.frame.Star.Position)
	vector.DrawFilledCircle(screen, float32(x), float32(y), starRadius, assets.StarColor, true)
}

func (g *Game) drawBodies(screen *ebiten.Image) {
	for _, body := range g.frame.Bodies {
		diameter := g.view.SpriteDiameter(body.Radius)
		scale := diameter / assets.SpriteSize()
		x, y := g.view.ToScreen(body.Position)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x-diameter/2, y-diameter/2)
		screen.DrawImage(assets.Sprite(body.AssetIndex), op)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Day: %.1f", g.frame.SimulatedTime/86400),
		fmt.Sprintf("Timestep: %.0f s", g.sim.Timestep()),
		fmt.Sprintf("FPS: %.1f", g.sim.FramesPerSecond()),
		fmt.Sprintf("Energy: %.4e J", g.frame.Energy),
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, float64(20+i*22))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.HUDFont, op)
	}

	instructionText := "Press Esc or Q to quit"
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, float64(g.view.Height-30))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, instructionText, assets.HUDFont, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.view.Width, g.view.Height
}
