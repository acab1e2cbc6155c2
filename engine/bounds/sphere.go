package bounds

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/util"
)

type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

func NewSphere(center mgl64.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

func (s Sphere) Collision(ray util.Ray3) (Collision, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 || s.Radius <= 0 {
		return Collision{}, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Collision{}, false
	}
	root := math.Sqrt(discriminant)
	tIn := (-halfB - root) / a
	tOut := (-halfB + root) / a
	// a ray starting inside reports the normal where it would have entered
	return clip(tIn, tOut, ray.Point(tIn).Sub(s.Center).Mul(1/s.Radius))
}

func (s Sphere) BoundingRadius() float64 {
	return s.Center.Len() + s.Radius
}

func (s Sphere) ToString() string {
	return fmt.Sprintf("Sphere(%s, r=%.4g)", util.FormatVec(s.Center), s.Radius)
}
