// Command dualray renders the same scene through the fixed-point and
// floating-point ray casting backends side by side, fixed on the left, float
// on the right. Arrow keys move, Tab toggles the minimap, Escape quits.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"chosenoffset.com/dualray/atlas"
	"chosenoffset.com/dualray/hud"
	"chosenoffset.com/dualray/maploader"
	"chosenoffset.com/dualray/raycast"
	"chosenoffset.com/dualray/render"
	"chosenoffset.com/dualray/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 320
	screenHeight = 240
	// viewGap separates the two views by one logical pixel.
	viewGap = 1

	// tickFrequency is the resolution of the host timing source.
	tickFrequency = uint64(time.Second)
)

// view couples one renderer with its framebuffer and presentation image.
type view struct {
	label    string
	renderer *render.Renderer
	fb       []uint32
	pix      []byte
	img      *ebiten.Image
}

func newView(label string, caster raycast.Caster, palette *atlas.Palette) *view {
	return &view{
		label:    label,
		renderer: render.New(caster, screenWidth, screenHeight, palette),
		fb:       make([]uint32, screenWidth*screenHeight),
		img:      ebiten.NewImage(screenWidth, screenHeight),
	}
}

// present traces a frame, stamps the rate overlay, and uploads the pixels.
func (v *view) present(pose world.Pose, m *world.Map, rate uint32) {
	v.renderer.TraceFrame(pose, m, v.fb)
	v.renderer.DrawOverlay(v.fb, rate)
	v.pix = render.AppendBytes(v.pix[:0], v.fb)
	v.img.WritePixels(v.pix)
}

type Game struct {
	m      *world.Map
	player *world.Player
	fixed  *view
	float  *view
	meter  *hud.Meter

	last        time.Time
	showMinimap bool
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMinimap = !g.showMinimap
	}

	moveDir := 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveDir = 1
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveDir = -1
	}
	rotDir := 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		rotDir = 1
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		rotDir = -1
	}

	now := time.Now()
	if !g.last.IsZero() {
		ticks := uint64(now.Sub(g.last))
		g.meter.AddFrame(ticks)
		// Normalize ticks to the core's 1/256-second movement unit.
		elapsed := ticks / (tickFrequency >> 8)
		g.player.Move(g.m, moveDir, rotDir, elapsed)
	}
	g.last = now

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	rate := g.meter.Rate()
	g.fixed.present(g.player.Fixed.Pose(), g.m, rate)
	g.float.present(g.player.Float, g.m, rate)

	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.fixed.img, op)
	op.GeoM.Translate(screenWidth+viewGap, 0)
	screen.DrawImage(g.float.img, op)

	ebitenutil.DebugPrintAt(screen, g.fixed.label, 4, screenHeight-16)
	ebitenutil.DebugPrintAt(screen, g.float.label, screenWidth+viewGap+4, screenHeight-16)

	if g.showMinimap {
		g.drawMinimap(screen)
	}
}

// drawMinimap draws a top-down cell view in the bottom-right corner with both
// pose trajectories, so arithmetic drift between them is visible directly.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	const cell = 4
	ox := float32(2*screenWidth + viewGap - g.m.Width*cell - 4)
	oy := float32(screenHeight - g.m.Height*cell - 4)

	vector.DrawFilledRect(screen, ox, oy, float32(g.m.Width*cell), float32(g.m.Height*cell),
		color.RGBA{0, 0, 0, 200}, false)

	for y := 0; y < g.m.Height; y++ {
		for x := 0; x < g.m.Width; x++ {
			if !g.m.IsWall(x, y) {
				continue
			}
			vector.DrawFilledRect(screen, ox+float32(x*cell), oy+float32(y*cell), cell, cell,
				color.RGBA{90, 90, 110, 255}, false)
		}
	}

	fx := g.player.Fixed.Pose()
	vector.DrawFilledCircle(screen, ox+float32(fx.X*cell), oy+float32(fx.Y*cell), 2,
		color.RGBA{255, 220, 80, 255}, true)
	vector.DrawFilledCircle(screen, ox+float32(g.player.Float.X*cell), oy+float32(g.player.Float.Y*cell), 2,
		color.RGBA{80, 220, 255, 255}, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 2*screenWidth + viewGap, screenHeight
}

func main() {
	levelFile := flag.String("level", "", "Level JSON file (empty = built-in level)")
	paletteFile := flag.String("palette", "", "Palette JSON file (empty = built-in palette)")
	scale := flag.Int("scale", 2, "Window scale factor")
	flag.Parse()

	m, spawn := world.DefaultLevel()
	if *levelFile != "" {
		var err error
		log.Printf("Loading level: %s", *levelFile)
		m, spawn, err = maploader.LoadLevel(*levelFile)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}
	log.Printf("Map %dx%d, spawn (%.1f, %.1f)", m.Width, m.Height, spawn.X, spawn.Y)

	palette := atlas.DefaultPalette()
	if *paletteFile != "" {
		var err error
		palette, err = atlas.LoadPalette(*paletteFile)
		if err != nil {
			log.Fatalf("Failed to load palette: %v", err)
		}
	}

	game := &Game{
		m:      m,
		player: world.NewPlayer(spawn),
		fixed:  newView("FIXED", raycast.NewFixedCaster(), palette),
		float:  newView("FLOAT", raycast.NewFloatCaster(), palette),
		meter:  hud.NewMeter(tickFrequency),
	}

	ebiten.SetWindowSize((2*screenWidth+viewGap)**scale, screenHeight**scale)
	ebiten.SetWindowTitle("DualRay [fixed-point vs. floating-point]")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
