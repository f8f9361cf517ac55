package gamemath

import "math"

// probeEpsilon keeps the right-hand probe inside the body so a flush body
// moving a full tile per tick still hits the tile it would enter.
const probeEpsilon = 1e-6

// Body is an axis aligned moving rectangle. X, Y is the top left corner in
// pixels, velocities are pixels per tick.
type Body struct {
	X, Y     float64
	VX, VY   float64
	TargetVX float64
	W, H     float64
	Grounded bool
}

// Params are the per class constants a body integrates with.
type Params struct {
	Acceleration   float64
	MaxSpeed       float64
	Gravity        float64
	MaxFallSpeed   float64
	GroundFriction float64
	AirFriction    float64
	// AvoidLedges stops horizontal movement when there is no ground one
	// step past the leading foot.
	AvoidLedges bool
}

// StepResult reports what a body ran into during one step.
type StepResult struct {
	HitWall    bool
	AtLedge    bool
	Landed     bool
	HitCeiling bool
}

// Integrate advances the body by one tick.
func Integrate(b *Body, p Params, r *Resolver) StepResult {
	ApplyHorizontal(b, p)
	ApplyGravity(b, p)

	var res StepResult
	res.HitWall, res.AtLedge = MoveX(b, p, r)
	res.Landed, res.HitCeiling = MoveY(b, r)
	return res
}

// ApplyHorizontal accelerates toward TargetVX or slides to a stop.
func ApplyHorizontal(b *Body, p Params) {
	friction := p.AirFriction
	if b.Grounded {
		friction = p.GroundFriction
	}

	switch {
	case b.TargetVX > 0:
		if b.VX < b.TargetVX {
			b.VX = Approach(b.VX, b.TargetVX, p.Acceleration)
		} else {
			b.VX = Approach(b.VX, b.TargetVX, friction)
		}
	case b.TargetVX < 0:
		if b.VX > b.TargetVX {
			b.VX = Approach(b.VX, b.TargetVX, p.Acceleration)
		} else {
			b.VX = Approach(b.VX, b.TargetVX, friction)
		}
	default:
		b.VX = ApplyFriction(b.VX, friction)
	}

	b.VX = ClampSpeed(b.VX, p.MaxSpeed)
}

// ApplyGravity pulls the body down, capped at the fall speed.
func ApplyGravity(b *Body, p Params) {
	b.VY += p.Gravity
	if b.VY > p.MaxFallSpeed {
		b.VY = p.MaxFallSpeed
	}
}

// MoveX moves the body horizontally. A blocked body is snapped flush against
// the tile it ran into, computed from the attempted position.
func MoveX(b *Body, p Params, r *Resolver) (hitWall, atLedge bool) {
	if b.VX == 0 {
		return false, false
	}

	size := r.TileSize()
	newX := b.X + b.VX
	top := b.Y
	bottom := b.Y + b.H - 1

	if b.VX > 0 {
		edge := newX + b.W - probeEpsilon
		if r.SolidAt(edge, top) || r.SolidAt(edge, bottom) {
			b.X = math.Floor(edge/size)*size - b.W
			b.VX = 0
			b.TargetVX = 0
			return true, false
		}
		if p.AvoidLedges && !r.SolidAt(newX+b.W, b.Y+b.H) {
			return false, true
		}
	} else {
		if r.SolidAt(newX, top) || r.SolidAt(newX, bottom) {
			b.X = (math.Floor(newX/size) + 1) * size
			b.VX = 0
			b.TargetVX = 0
			return true, false
		}
		if p.AvoidLedges && !r.SolidAt(newX-1, b.Y+b.H) {
			return false, true
		}
	}

	b.X = newX
	return false, false
}

// MoveY moves the body vertically. Landed is only reported on the tick the
// body goes from airborne to grounded.
func MoveY(b *Body, r *Resolver) (landed, hitCeiling bool) {
	size := r.TileSize()
	newY := b.Y + b.VY

	switch {
	case b.VY > 0:
		if r.GroundBelow(b, b.X, newY) {
			landed = !b.Grounded
			b.Y = math.Floor((newY+b.H)/size)*size - b.H
			b.VY = 0
			b.Grounded = true
			return landed, false
		}
	case b.VY < 0:
		if r.CeilingAbove(b, b.X, newY) {
			b.Y = (math.Floor(newY/size) + 1) * size
			b.VY = 0
			return false, true
		}
	default:
		return false, false
	}

	b.Y = newY
	b.Grounded = false
	return false, false
}

// Overlaps reports whether two bodies' rectangles intersect. Touching edges
// do not count.
func (b *Body) Overlaps(o *Body) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Bottom returns the y of the body's bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the body.
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// IsStomp reports whether a body whose bottom edge sits at bottom lands on
// top of a body whose top edge is at top, within the given tolerance band.
func IsStomp(bottom, top, above, below float64) bool {
	return bottom >= top-above && bottom <= top+below
}
