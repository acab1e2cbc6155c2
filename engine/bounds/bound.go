// Package bounds holds the ray collision capability of shapes and a few ready-made shapes.
//
// Every Bound is tested in its own local frame: the shape's origin is the zero of the
// coordinate system and callers translate the ray before asking for a collision.
package bounds

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/util"
)

// Collision is a ray entering a bound at ray parameter In and leaving it at Out.
// Implementations guarantee 0 <= In <= Out. Normal is the unit outward normal at the
// entry point, in world orientation.
type Collision struct {
	In     float64
	Out    float64
	Normal mgl64.Vec3
}

func (c Collision) Penetration() float64 {
	return c.Out - c.In
}

func (c Collision) ToString() string {
	return fmt.Sprintf("Collision(in=%.4g, out=%.4g, normal=%s)", c.In, c.Out, util.FormatVec(c.Normal))
}

// Bound reports the collision of a local-frame ray with a shape. It must be a pure
// function of the ray and the shape's own parameters.
type Bound interface {
	Collision(ray util.Ray3) (Collision, bool)
}

// Radial is implemented by bounds that fit inside a sphere of BoundingRadius around
// their local origin. +Inf means unknown.
type Radial interface {
	BoundingRadius() float64
}

// RadiusOf returns the bounding radius of b, or +Inf when b does not report one.
func RadiusOf(b Bound) float64 {
	if r, ok := b.(Radial); ok {
		return r.BoundingRadius()
	}
	return math.Inf(1)
}

// BoundFunc adapts a plain function to the Bound interface.
type BoundFunc func(ray util.Ray3) (Collision, bool)

func (f BoundFunc) Collision(ray util.Ray3) (Collision, bool) {
	return f(ray)
}

// clip turns the raw [tIn, tOut] interval of a ray/shape intersection into a forward
// collision, or reports that the shape lies entirely behind the ray.
func clip(tIn, tOut float64, normal mgl64.Vec3) (Collision, bool) {
	if math.IsNaN(tIn) || math.IsNaN(tOut) || tOut < 0 || tIn > tOut {
		return Collision{}, false
	}
	if tIn < 0 {
		tIn = 0
	}
	return Collision{In: tIn, Out: tOut, Normal: normal}, true
}
