package systems

import (
	"testing"

	"github.com/automoto/pixelquest/components"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVertical(t *testing.T) {
	tests := []struct {
		name       string
		body       components.BodyData
		wantY      float64
		wantGround bool
	}{
		{
			name:       "lands on top",
			body:       components.BodyData{X: 100, Y: 520, VY: 3, W: 24, H: 32},
			wantY:      518,
			wantGround: true,
		},
		{
			name:  "bumps ceiling",
			body:  components.BodyData{X: 100, Y: 595, VY: -4, W: 24, H: 32},
			wantY: 600,
		},
		{
			name:  "no overlap",
			body:  components.BodyData{X: 100, Y: 400, VY: 3, W: 24, H: 32},
			wantY: 400,
		},
		{
			name:  "touching edge is not overlap",
			body:  components.BodyData{X: 100, Y: 518, VY: 0, W: 24, H: 32},
			wantY: 518,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			contact := components.PhysicsData{OnGround: true}
			ResolveVertical(&body, &contact, []gamemath.Rect{floor})

			assert.Equal(t, tt.wantY, body.Y)
			assert.Equal(t, tt.wantGround, contact.OnGround)
			if tt.wantY != tt.body.Y {
				assert.Zero(t, body.VY)
			}
		})
	}
}

func TestResolveHorizontal(t *testing.T) {
	wall := gamemath.Rect{X: 300, Y: 400, W: 20, H: 150}

	t.Run("moving right into wall", func(t *testing.T) {
		body := components.BodyData{X: 280, Y: 450, VX: 4, W: 24, H: 32}
		var contact components.PhysicsData
		ResolveHorizontal(&body, &contact, []gamemath.Rect{wall})

		assert.Equal(t, 276.0, body.X)
		assert.Zero(t, body.VX)
		assert.True(t, contact.OnWall)
		assert.Equal(t, 1, contact.WallSide)
	})

	t.Run("moving left into wall", func(t *testing.T) {
		body := components.BodyData{X: 318, Y: 450, VX: -4, W: 24, H: 32}
		var contact components.PhysicsData
		ResolveHorizontal(&body, &contact, []gamemath.Rect{wall})

		assert.Equal(t, 320.0, body.X)
		assert.True(t, contact.OnWall)
		assert.Equal(t, -1, contact.WallSide)
	})

	t.Run("clears wall flags when free", func(t *testing.T) {
		body := components.BodyData{X: 100, Y: 450, VX: 4, W: 24, H: 32}
		contact := components.PhysicsData{OnWall: true, WallSide: 1}
		ResolveHorizontal(&body, &contact, []gamemath.Rect{wall})

		assert.False(t, contact.OnWall)
		assert.Zero(t, contact.WallSide)
		assert.Equal(t, 4.0, body.VX)
	})
}

func TestResolveOverlap(t *testing.T) {
	platforms := []gamemath.Rect{
		floor,
		{X: 300, Y: 400, W: 100, H: 20},
	}
	space := resolv.NewSpace(800, 600, 32, 32)
	for i, p := range platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvSolid)
		obj.Data = i
		space.Add(obj)
	}

	t.Run("falling into floor is pushed up", func(t *testing.T) {
		body := components.BodyData{X: 50, Y: 525, VY: 2, W: 24, H: 32}
		var contact components.PhysicsData
		ResolveOverlap(space, &body, &contact, platforms)

		assert.Equal(t, 518.0, body.Y)
		assert.Zero(t, body.VY)
		assert.True(t, contact.OnGround)
	})

	t.Run("resting body is left in place", func(t *testing.T) {
		body := components.BodyData{X: 100, Y: 520, W: 24, H: 32}
		var contact components.PhysicsData
		ResolveOverlap(space, &body, &contact, platforms)

		assert.Equal(t, 520.0, body.Y)
		assert.False(t, contact.OnGround)
	})

	t.Run("side overlap pushes out horizontally", func(t *testing.T) {
		body := components.BodyData{X: 280, Y: 395, VX: 3, W: 24, H: 32}
		var contact components.PhysicsData
		ResolveOverlap(space, &body, &contact, platforms)

		assert.Equal(t, 276.0, body.X)
		assert.Equal(t, 395.0, body.Y)
		assert.Zero(t, body.VX)
	})

	t.Run("moving away from the nearest face is left in place", func(t *testing.T) {
		body := components.BodyData{X: 280, Y: 395, VX: -3, W: 24, H: 32}
		var contact components.PhysicsData
		ResolveOverlap(space, &body, &contact, platforms)

		assert.Equal(t, 280.0, body.X)
		assert.Equal(t, -3.0, body.VX)
	})

	t.Run("rising body is not snapped onto top face", func(t *testing.T) {
		body := components.BodyData{X: 320, Y: 370, VY: -3, W: 24, H: 32}
		var contact components.PhysicsData
		ResolveOverlap(space, &body, &contact, platforms)

		assert.Equal(t, 370.0, body.Y)
		assert.False(t, contact.OnGround)
	})

	t.Run("candidates are ordered by platform index", func(t *testing.T) {
		body := components.BodyData{X: 310, Y: 410, W: 24, H: 150}
		require.Equal(t, []int{0, 1}, overlapCandidates(space, &body))

		// The probe must not stay registered in the space.
		assert.Len(t, space.Objects(), len(platforms))
	})

	t.Run("nil space has no candidates", func(t *testing.T) {
		body := components.BodyData{X: 50, Y: 525, W: 24, H: 32}
		assert.Empty(t, overlapCandidates(nil, &body))
	})
}

func TestSettleBody(t *testing.T) {
	platforms := []gamemath.Rect{
		floor,
		{X: 300, Y: 400, W: 100, H: 20},
	}
	space := resolv.NewSpace(800, 600, 32, 32)
	for i, p := range platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvSolid)
		obj.Data = i
		space.Add(obj)
	}

	t.Run("resting body inside floor is pushed up", func(t *testing.T) {
		body := components.BodyData{X: 100, Y: 520, W: 24, H: 32}
		var contact components.PhysicsData
		SettleBody(space, &body, &contact, platforms)

		assert.Equal(t, 518.0, body.Y)
		assert.True(t, contact.OnGround)
	})

	t.Run("resting body beside a platform is pushed out sideways", func(t *testing.T) {
		body := components.BodyData{X: 280, Y: 395, W: 24, H: 32}
		var contact components.PhysicsData
		SettleBody(space, &body, &contact, platforms)

		assert.Equal(t, 276.0, body.X)
		assert.False(t, contact.OnGround)
	})

	t.Run("rising body is still not snapped onto top face", func(t *testing.T) {
		body := components.BodyData{X: 320, Y: 370, VY: -3, W: 24, H: 32}
		var contact components.PhysicsData
		SettleBody(space, &body, &contact, platforms)

		assert.Equal(t, 370.0, body.Y)
		assert.False(t, contact.OnGround)
	})
}

func TestHasGroundAt(t *testing.T) {
	platforms := []gamemath.Rect{floor}

	assert.True(t, hasGroundAt(platforms, 400, 555))
	assert.False(t, hasGroundAt(platforms, 400, 550), "top edge is outside")
	assert.False(t, hasGroundAt(platforms, 400, 500))
}
