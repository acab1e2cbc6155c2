package raycast

import (
	"fmt"
	"math"
	"sort"

	"github.com/memmaker/raycaster/engine/bounds"
	"github.com/memmaker/raycaster/engine/util"
)

// ListScene tests every object on every cast and keeps the nearest hit.
// It is not safe to change the scene while a cast is running.
type ListScene[B Boundable] struct {
	objects []B
}

func NewListScene[B Boundable](objects ...B) *ListScene[B] {
	return &ListScene[B]{objects: append([]B(nil), objects...)}
}

func (s *ListScene[B]) Add(objects ...B) {
	s.objects = append(s.objects, objects...)
}

// Remove deletes every object for which match returns true and reports how many were removed.
func (s *ListScene[B]) Remove(match func(object B) bool) int {
	kept := s.objects[:0]
	for _, object := range s.objects {
		if !match(object) {
			kept = append(kept, object)
		}
	}
	removed := len(s.objects) - len(kept)
	var zero B
	for i := len(kept); i < len(s.objects); i++ {
		s.objects[i] = zero
	}
	s.objects = kept
	return removed
}

// Objects returns a copy of the current objects.
func (s *ListScene[B]) Objects() []B {
	return append([]B(nil), s.objects...)
}

func (s *ListScene[B]) Len() int {
	return len(s.objects)
}

func (s *ListScene[B]) Cast(rc *Raycast[B], ray util.Ray3, maxDistance float64, test Predicate[B]) Result[B] {
	if result, ok := rc.Nearest(ray, s.objects, maxDistance, test); ok {
		return result
	}
	return Miss[B](ray, maxDistance)
}

// OrderedScene returns the first object hit in the order objects were given. It is a
// nearest-hit scene only when the caller keeps objects sorted by how soon a ray
// reaches them, e.g. blocks listed in the order a voxel walk visits them. Hits beyond
// maxDistance are passed over.
type OrderedScene[B Boundable] struct {
	objects []B
}

func NewOrderedScene[B Boundable](objects ...B) *OrderedScene[B] {
	return &OrderedScene[B]{objects: append([]B(nil), objects...)}
}

func (s *OrderedScene[B]) Cast(rc *Raycast[B], ray util.Ray3, maxDistance float64, test Predicate[B]) Result[B] {
	for _, object := range s.objects {
		result, ok := rc.Intersects(ray, object, test)
		if ok && result.Distance <= maxDistance {
			return result
		}
	}
	return Miss[B](ray, maxDistance)
}

// SortedScene orders candidates by the earliest distance at which the ray could reach
// their bounding sphere and stops once no remaining candidate can beat the best hit.
// Bounds that do not report a radius are always tested.
type SortedScene[B Boundable] struct {
	objects []B
	radii   []float64
}

func NewSortedScene[B Boundable](objects ...B) *SortedScene[B] {
	s := &SortedScene[B]{}
	s.Add(objects...)
	return s
}

func (s *SortedScene[B]) Add(objects ...B) {
	for _, object := range objects {
		s.objects = append(s.objects, object)
		s.radii = append(s.radii, bounds.RadiusOf(object.Bound()))
	}
}

func (s *SortedScene[B]) Len() int {
	return len(s.objects)
}

type sortedCandidate struct {
	index int
	reach float64
}

func (s *SortedScene[B]) Cast(rc *Raycast[B], ray util.Ray3, maxDistance float64, test Predicate[B]) Result[B] {
	dirLen := ray.Direction.Len()
	candidates := make([]sortedCandidate, 0, len(s.objects))
	for i, object := range s.objects {
		reach := math.Inf(-1)
		if radius := s.radii[i]; !math.IsInf(radius, 1) {
			// the bounding sphere can't be entered before its center's projection minus the radius
			reach = ray.Project(object.Origin()) - radius/dirLen
		}
		if reach > maxDistance {
			continue
		}
		candidates = append(candidates, sortedCandidate{index: i, reach: reach})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].reach < candidates[b].reach
	})

	var nearest Result[B]
	nearestIndex := -1
	tested := 0
	for _, candidate := range candidates {
		if nearestIndex >= 0 && candidate.reach > nearest.Distance {
			break
		}
		tested++
		result, ok := rc.Intersects(ray, s.objects[candidate.index], test)
		if !ok || result.Distance > maxDistance {
			continue
		}
		if nearestIndex < 0 || result.Distance < nearest.Distance || (result.Distance == nearest.Distance && candidate.index < nearestIndex) {
			nearest = result
			nearestIndex = candidate.index
		}
	}
	util.LogRaycastDebug(fmt.Sprintf("[SortedScene] tested %d of %d objects", tested, len(s.objects)))
	if nearestIndex < 0 {
		return Miss[B](ray, maxDistance)
	}
	return nearest
}
