package render

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarVertices(t *testing.T) {
	got := StarVertices(Pt(262, 262), 30)
	want := []Point{
		{262, 232}, {272, 252}, {292, 262}, {272, 272},
		{262, 292}, {252, 272}, {232, 262}, {252, 252},
	}
	assert.Equal(t, want, got)
}

func sortedPoints(pts []Point) []Point {
	out := append([]Point(nil), pts...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func mirror(pts []Point, vertical bool) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		if vertical {
			out[i] = Pt(2*Center-p.X, p.Y)
		} else {
			out[i] = Pt(p.X, 2*Center-p.Y)
		}
	}
	return out
}

func TestStarsAreSymmetric(t *testing.T) {
	centers := StarCenters()
	require.Len(t, centers, 4)

	sets := make([][]Point, len(centers))
	for i, c := range centers {
		sets[i] = sortedPoints(StarVertices(c, StarSize))
	}
	contains := func(candidate []Point) bool {
		for _, s := range sets {
			if assert.ObjectsAreEqual(s, candidate) {
				return true
			}
		}
		return false
	}
	for i, s := range sets {
		assert.True(t, contains(sortedPoints(mirror(s, true))), "star %d mirrored across x=%d", i, Center)
		assert.True(t, contains(sortedPoints(mirror(s, false))), "star %d mirrored across y=%d", i, Center)
	}
}
