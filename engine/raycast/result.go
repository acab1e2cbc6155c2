package raycast

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/bounds"
	"github.com/memmaker/raycaster/engine/util"
)

// NoPenetration is the Penetration of a Result that hit nothing.
const NoPenetration = -1.0

// Boundable is anything placed in the world with a bound around its origin.
type Boundable interface {
	Origin() mgl64.Vec3
	Bound() bounds.Bound
}

// Predicate decides whether an object may be hit. A nil Predicate accepts everything.
type Predicate[B Boundable] func(object B) bool

func (p Predicate[B]) accepts(object B) bool {
	return p == nil || p(object)
}

// Result is the outcome of one cast.
//
// On a hit, Ray is the cast ray rebased to the hit object's origin while In and Out
// are world positions. On a miss, Ray is the cast ray itself, In is where the ray
// ended, Out and Normal are zero and Penetration is NoPenetration.
type Result[B Boundable] struct {
	Ray         util.Ray3
	Distance    float64
	In          mgl64.Vec3
	Out         mgl64.Vec3
	Normal      mgl64.Vec3
	Penetration float64
	Hit         B
	HasHit      bool
}

// Miss is the result of a ray that travelled maxDistance without hitting anything.
func Miss[B Boundable](ray util.Ray3, maxDistance float64) Result[B] {
	return Result[B]{
		Ray:         ray,
		Distance:    maxDistance,
		In:          ray.Point(maxDistance),
		Penetration: NoPenetration,
	}
}

// Object returns the hit object, if any.
func (r Result[B]) Object() (B, bool) {
	return r.Hit, r.HasHit
}

// Exit returns the world point where the ray leaves the hit object.
func (r Result[B]) Exit() (mgl64.Vec3, bool) {
	return r.Out, r.HasHit
}

// SurfaceNormal returns the normal of the entered surface.
func (r Result[B]) SurfaceNormal() (mgl64.Vec3, bool) {
	return r.Normal, r.HasHit
}

func (r Result[B]) ToString() string {
	if !r.HasHit {
		return fmt.Sprintf("Miss(distance=%.4g, end=%s)", r.Distance, util.FormatVec(r.In))
	}
	return fmt.Sprintf("Hit(distance=%.4g, in=%s, out=%s, normal=%s, penetration=%.4g)",
		r.Distance, util.FormatVec(r.In), util.FormatVec(r.Out), util.FormatVec(r.Normal), r.Penetration)
}
