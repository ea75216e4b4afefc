package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/koteyur/vector2d/math2d"
	"github.com/koteyur/vector2d/physics"
)

var contactColor = color.RGBA{255, 60, 60, 255}

func line(screen *ebiten.Image, a, b math2d.Vec2, clr color.Color) {
	ebitenutil.DrawLine(screen,
		a.X*pixelsPerUnit, a.Y*pixelsPerUnit,
		b.X*pixelsPerUnit, b.Y*pixelsPerUnit,
		clr,
	)
}

// drawBody outlines b. Circles also get a radius line so rotation is
// visible.
func drawBody(screen *ebiten.Image, b *physics.Body) {
	clr := b.Color.RGBA()
	n := b.VertexCount()
	for i := 0; i < n; i++ {
		j := i + 1
		if j == n {
			j = 0
		}
		line(screen, b.Vertex(i), b.Vertex(j), clr)
	}
	if b.Shape.Kind == physics.ShapeCircle {
		line(screen, b.Position, b.Vertex(0), clr)
	}
}

func drawManifold(screen *ebiten.Image, m physics.Manifold) {
	for i := 0; i < m.ContactCount; i++ {
		c := m.Contacts[i]
		line(screen, c, c.Add(m.Normal.Scale(2)), contactColor)
		ebitenutil.DrawRect(screen, c.X*pixelsPerUnit-2, c.Y*pixelsPerUnit-2, 4, 4, contactColor)
	}
}
