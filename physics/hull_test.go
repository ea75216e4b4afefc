package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/vector2d/math2d"
)

func randomPoints(rng *rand.Rand, n int, radius float64) []math2d.Vec2 {
	pts := make([]math2d.Vec2, n)
	for i := range pts {
		pts[i] = math2d.V(math2d.Random(rng, -radius, radius), math2d.Random(rng, -radius, radius))
	}
	return pts
}

func centroid(s Shape) math2d.Vec2 {
	var c math2d.Vec2
	for i := 0; i < s.VertexCount; i++ {
		c.AddInPlace(s.Vertices[i])
	}
	return c.Div(float64(s.VertexCount))
}

// requireConvexCCW checks winding, normal length, perpendicularity and
// outward direction.
func requireConvexCCW(t *testing.T, s Shape) {
	t.Helper()
	c := centroid(s)
	for i := 0; i < s.VertexCount; i++ {
		p1 := s.Vertices[i]
		p2 := s.Vertices[s.next(i)]
		p3 := s.Vertices[s.next(s.next(i))]
		edge := p2.Sub(p1)
		n := s.Normals[i]

		require.Greater(t, math2d.Cross(edge, p3.Sub(p2)), -1e-9, "edge %d turns clockwise", i)
		require.InDelta(t, 1.0, n.Len(), 1e-9, "normal %d", i)
		require.InDelta(t, 0.0, math2d.Dot(n, edge), 1e-9, "normal %d not perpendicular", i)
		mid := p1.Add(p2).Scale(0.5)
		require.Greater(t, math2d.Dot(n, mid.Sub(c)), 0.0, "normal %d points inward", i)
	}
}

func TestSet_DropsInteriorPoint(t *testing.T) {
	s := NewPolygon([]math2d.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 1}})
	require.Equal(t, 4, s.VertexCount)
	assert.Equal(t, []math2d.Vec2{{X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}, s.Vertices[:4])
	assert.Equal(t, math2d.V(1, 0), s.Normals[0])
	requireConvexCCW(t, s)
}

func TestSet_StartsAtRightmostLowest(t *testing.T) {
	s := NewPolygon([]math2d.Vec2{{X: 0, Y: 3}, {X: 1, Y: 5}, {X: 1, Y: -2}, {X: -3, Y: 0}})
	assert.Equal(t, math2d.V(1, -2), s.Vertices[0])
	requireConvexCCW(t, s)
}

func TestSet_RandomPointClouds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		n := 3 + rng.Intn(30)
		pts := randomPoints(rng, n, 10)
		if err := ValidatePoints(pts); err != nil {
			continue
		}
		s := NewPolygon(pts)
		require.LessOrEqual(t, s.VertexCount, n)
		require.GreaterOrEqual(t, s.VertexCount, 3)
		requireConvexCCW(t, s)

		// Every input point lies inside or on the hull.
		for _, p := range pts {
			for j := 0; j < s.VertexCount; j++ {
				require.LessOrEqual(t, math2d.Dot(s.Normals[j], p.Sub(s.Vertices[j])), 1e-9)
			}
		}
	}
}

func TestSet_CollinearOnEdgeKeepsFarthest(t *testing.T) {
	s := NewPolygon([]math2d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}})
	assert.Equal(t, 3, s.VertexCount)
	requireConvexCCW(t, s)
}

func TestSet_WeldsDuplicates(t *testing.T) {
	s := NewPolygon([]math2d.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	assert.Equal(t, 3, s.VertexCount)
	requireConvexCCW(t, s)
}

func TestSet_TruncatesToMax(t *testing.T) {
	const n = MaxPolyVertexCount + 6
	pts := make([]math2d.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = math2d.V(10*math.Cos(a), 10*math.Sin(a))
	}
	s := NewPolygon(pts)
	assert.Equal(t, MaxPolyVertexCount, s.VertexCount)
	requireConvexCCW(t, s)
}

func TestSet_PanicsOnDegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		pts  []math2d.Vec2
	}{
		{"two points", []math2d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{"all equal", []math2d.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}},
		{"collinear", []math2d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { NewPolygon(tt.pts) })
			assert.Error(t, ValidatePoints(tt.pts))
		})
	}
}

func TestValidatePoints_AcceptsTriangle(t *testing.T) {
	assert.NoError(t, ValidatePoints([]math2d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}))
}
