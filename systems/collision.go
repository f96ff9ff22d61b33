package systems

import (
	"sort"

	"github.com/automoto/pixelquest/components"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/tags"
	"github.com/solarlune/resolv"
)

// ResolveHorizontal pushes body out of every overlapped platform along x,
// in platform order, after the horizontal sub-step.
func ResolveHorizontal(body *components.BodyData, contact *components.PhysicsData, platforms []gamemath.Rect) {
	contact.OnWall = false
	contact.WallSide = 0
	for _, p := range platforms {
		if !gamemath.Intersects(body.Rect(), p) {
			continue
		}
		if body.VX > 0 {
			body.X = p.X - body.W
			contact.OnWall = true
			contact.WallSide = 1
		} else if body.VX < 0 {
			body.X = p.X + p.W
			contact.OnWall = true
			contact.WallSide = -1
		}
		body.VX = 0
	}
}

// ResolveVertical lands body on, or bumps it off, every overlapped platform
// after the vertical sub-step.
func ResolveVertical(body *components.BodyData, contact *components.PhysicsData, platforms []gamemath.Rect) {
	contact.OnGround = false
	for _, p := range platforms {
		if !gamemath.Intersects(body.Rect(), p) {
			continue
		}
		if body.VY > 0 {
			body.Y = p.Y - body.H
			body.VY = 0
			contact.OnGround = true
		} else if body.VY < 0 {
			body.Y = p.Y + p.H
			body.VY = 0
		}
	}
}

// ResolveOverlap separates body from overlapping platforms along the axis of
// least penetration. A face is only applied when the body is moving into it.
// Candidates come from the space broadphase and are visited in platform order.
func ResolveOverlap(space *resolv.Space, body *components.BodyData, contact *components.PhysicsData, platforms []gamemath.Rect) {
	resolveOverlap(space, body, contact, platforms, false)
}

// SettleBody is ResolveOverlap for bodies placed rather than moved, such as
// spawns and respawns. Zero velocity on an axis counts as moving into either
// face on that axis.
func SettleBody(space *resolv.Space, body *components.BodyData, contact *components.PhysicsData, platforms []gamemath.Rect) {
	resolveOverlap(space, body, contact, platforms, true)
}

func resolveOverlap(space *resolv.Space, body *components.BodyData, contact *components.PhysicsData, platforms []gamemath.Rect, atRest bool) {
	into := func(v, dir float64) bool {
		return v*dir > 0 || (atRest && v == 0)
	}

	for _, i := range overlapCandidates(space, body) {
		if i < 0 || i >= len(platforms) {
			continue
		}
		p := platforms[i]
		if !gamemath.Intersects(body.Rect(), p) {
			continue
		}

		overlapLeft := body.X + body.W - p.X
		overlapRight := p.X + p.W - body.X
		overlapTop := body.Y + body.H - p.Y
		overlapBottom := p.Y + p.H - body.Y
		minOverlap := min(overlapLeft, overlapRight, overlapTop, overlapBottom)

		switch {
		case minOverlap == overlapTop && into(body.VY, 1):
			body.Y = p.Y - body.H
			body.VY = 0
			contact.OnGround = true
		case minOverlap == overlapBottom && into(body.VY, -1):
			body.Y = p.Y + p.H
			body.VY = 0
		case minOverlap == overlapLeft && into(body.VX, 1):
			body.X = p.X - body.W
			body.VX = 0
		case minOverlap == overlapRight && into(body.VX, -1):
			body.X = p.X + p.W
			body.VX = 0
		}
	}
}

// overlapCandidates returns the indices of platforms sharing a broadphase
// cell with body, sorted ascending. The probe is grown by a pixel on every
// side so sub-pixel overlaps across a cell boundary are not missed.
func overlapCandidates(space *resolv.Space, body *components.BodyData) []int {
	if space == nil {
		return nil
	}

	probe := resolv.NewObject(body.X-1, body.Y-1, body.W+2, body.H+2, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	seen := make(map[int]bool)
	var indices []int
	for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
		if i, ok := obj.Data.(int); ok && !seen[i] {
			seen[i] = true
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices
}

// hasGroundAt reports whether the point lies strictly inside any platform.
func hasGroundAt(platforms []gamemath.Rect, x, y float64) bool {
	for _, p := range platforms {
		if p.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}
