package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/koteyur/vector2d/math2d"
	"github.com/koteyur/vector2d/physics"
)

type Game struct {
	scene        *physics.Scene
	rng          *rand.Rand
	log          physics.Logger
	paused       bool
	showContacts bool
}

func cursorWorld() math2d.Vec2 {
	x, y := ebiten.CursorPosition()
	return math2d.V(float64(x)/pixelsPerUnit, float64(y)/pixelsPerUnit)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showContacts = !g.showContacts
		g.log.SetDebug(g.showContacts)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.spawnPolygon(cursorWorld())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.spawnCircle(cursorWorld())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.spawnCircle(math2d.V(float64(x)/pixelsPerUnit, float64(y)/pixelsPerUnit))
	}

	if !g.paused {
		g.scene.Step()
		g.removeFallen()
	}
	return nil
}

func (g *Game) spawnCircle(at math2d.Vec2) {
	g.add(physics.NewCircle(math2d.Random(g.rng, 1, 3)), at)
}

func (g *Game) spawnPolygon(at math2d.Vec2) {
	count := 3 + g.rng.Intn(6)
	e := math2d.Random(g.rng, 2, 5)
	points := make([]math2d.Vec2, count)
	for i := range points {
		points[i] = math2d.V(math2d.Random(g.rng, -e, e), math2d.Random(g.rng, -e, e))
	}
	if err := physics.ValidatePoints(points); err != nil {
		g.log.Debugf("skipping polygon: %v", err)
		return
	}
	g.add(physics.NewPolygon(points), at)
}

func (g *Game) add(shape physics.Shape, at math2d.Vec2) {
	_, err := g.scene.Add(shape, at.X, at.Y)
	if errors.Is(err, physics.ErrSceneFull) {
		return
	}
	if err != nil {
		g.log.Errorf("add %v: %v", shape.Kind, err)
	}
}

// removeFallen drops bodies that left the bottom of the screen.
func (g *Game) removeFallen() {
	limit := screenHeight/pixelsPerUnit + 20
	for _, b := range g.scene.Bodies() {
		if b.Position.Y > limit {
			if err := g.scene.Remove(b.ID); err != nil {
				g.log.Errorf("remove %d: %v", b.ID, err)
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, b := range g.scene.Bodies() {
		drawBody(screen, b)
	}
	if g.showContacts {
		for _, m := range g.scene.Contacts() {
			drawManifold(screen, m)
		}
	}

	state := "running"
	if g.paused {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Left click: polygon  Right click: circle  <space>: pause  <d>: contacts\n"+
			"%s  bodies: %d  contacts: %d  steps: %d  TPS: %0.1f",
		state, g.scene.Len(), len(g.scene.Contacts()), g.scene.Steps(), ebiten.CurrentTPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
