// Package raycast casts rays through a set of boundable objects and reports the hit
// with its entry and exit points, surface normal and penetration depth.
//
// Raycast holds the intersection routines shared by every scene. How candidates are
// found and narrowed to the cast distance is up to a Strategy, see ListScene,
// OrderedScene and SortedScene.
package raycast

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/util"
)

// Strategy picks the best Result for a ray among the candidates of one scene. It may
// rely on ray being non-degenerate and maxDistance being positive and finite.
type Strategy[B Boundable] interface {
	Cast(rc *Raycast[B], ray util.Ray3, maxDistance float64, test Predicate[B]) Result[B]
}

// StrategyFunc adapts a plain function to a Strategy.
type StrategyFunc[B Boundable] func(rc *Raycast[B], ray util.Ray3, maxDistance float64, test Predicate[B]) Result[B]

func (f StrategyFunc[B]) Cast(rc *Raycast[B], ray util.Ray3, maxDistance float64, test Predicate[B]) Result[B] {
	return f(rc, ray, maxDistance, test)
}

// Raycast casts rays through the candidates its strategy provides.
type Raycast[B Boundable] struct {
	strategy Strategy[B]
}

// New returns a Raycast backed by strategy.
func New[B Boundable](strategy Strategy[B]) *Raycast[B] {
	return &Raycast[B]{strategy: strategy}
}

// Intersects tests the ray against a single object. Objects rejected by test are not
// looked at.
func (rc *Raycast[B]) Intersects(ray util.Ray3, object B, test Predicate[B]) (Result[B], bool) {
	if !test.accepts(object) {
		return Result[B]{}, false
	}
	origin := object.Origin()
	local := ray.At(ray.Origin.Sub(origin))
	collision, ok := object.Bound().Collision(local)
	if !ok {
		return Result[B]{}, false
	}
	return Result[B]{
		Ray:         local,
		Distance:    collision.In,
		In:          local.Point(collision.In).Add(origin),
		Out:         local.Point(collision.Out).Add(origin),
		Normal:      collision.Normal,
		Penetration: collision.Out - collision.In,
		Hit:         object,
		HasHit:      true,
	}, true
}

// IntersectsAny returns the result of the first object in iteration order that the ray
// hits. This is not the nearest hit unless objects are ordered by entry distance.
func (rc *Raycast[B]) IntersectsAny(ray util.Ray3, objects []B, test Predicate[B]) (Result[B], bool) {
	for _, object := range objects {
		if result, ok := rc.Intersects(ray, object, test); ok {
			return result, true
		}
	}
	return Result[B]{}, false
}

// Nearest tests every object and returns the hit with the smallest distance that is
// not beyond maxDistance. Equal distances keep the earlier object.
func (rc *Raycast[B]) Nearest(ray util.Ray3, objects []B, maxDistance float64, test Predicate[B]) (Result[B], bool) {
	var nearest Result[B]
	found := false
	for _, object := range objects {
		result, ok := rc.Intersects(ray, object, test)
		if !ok || result.Distance > maxDistance {
			continue
		}
		if !found || result.Distance < nearest.Distance {
			nearest = result
			found = true
		}
	}
	return nearest, found
}

// Cast sends the ray up to maxDistance through the scene. When nothing is hit the
// result is a Miss whose In is the point at maxDistance.
//
// A maxDistance that is not positive and finite ends the cast at the ray origin. A
// zero direction never leaves the origin either. No bound is tested in both cases.
func (rc *Raycast[B]) Cast(ray util.Ray3, maxDistance float64, test Predicate[B]) Result[B] {
	if !util.IsFinite(maxDistance) || maxDistance <= 0 {
		if maxDistance != 0 {
			util.LogRaycastWarning(fmt.Sprintf("[Raycast] invalid max distance %v, ending at origin", maxDistance))
		}
		return Miss[B](ray, 0)
	}
	if ray.IsDegenerate() {
		util.LogRaycastWarning(fmt.Sprintf("[Raycast] degenerate %s", ray.ToString()))
		return Miss[B](ray, maxDistance)
	}
	result := rc.strategy.Cast(rc, ray, maxDistance, test)
	if result.HasHit && result.Distance > maxDistance {
		util.LogRaycastDebug(fmt.Sprintf("[Raycast] dropping hit at %.4g beyond %.4g", result.Distance, maxDistance))
		return Miss[B](ray, maxDistance)
	}
	return result
}

// CastFrom is Cast with the ray given as origin and direction.
func (rc *Raycast[B]) CastFrom(origin, direction mgl64.Vec3, maxDistance float64, test Predicate[B]) Result[B] {
	return rc.Cast(util.NewRay3(origin, direction), maxDistance, test)
}
