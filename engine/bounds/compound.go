package bounds

import (
	"math"

	"github.com/memmaker/raycaster/engine/util"
)

// Compound is a bound made of several parts sharing one local frame, like the
// collision boxes of a stair block. The nearest entered part wins; ties keep the
// earlier part.
type Compound struct {
	Parts []Bound
}

func NewCompound(parts ...Bound) Compound {
	return Compound{Parts: parts}
}

func (c Compound) Collision(ray util.Ray3) (Collision, bool) {
	var nearest Collision
	found := false
	for _, part := range c.Parts {
		collision, ok := part.Collision(ray)
		if !ok {
			continue
		}
		if !found || collision.In < nearest.In {
			nearest = collision
			found = true
		}
	}
	return nearest, found
}

func (c Compound) BoundingRadius() float64 {
	radius := 0.0
	for _, part := range c.Parts {
		radius = math.Max(radius, RadiusOf(part))
	}
	return radius
}
