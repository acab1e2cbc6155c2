package bounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/util"
)

// Mesh is a triangle soup. The entry is the nearest triangle crossed by the ray and
// the exit the farthest one, so a closed mesh behaves like a solid and an open
// surface reports In == Out.
type Mesh struct {
	Triangles [][3]mgl64.Vec3
	radius    float64
}

func NewMesh(triangles [][3]mgl64.Vec3) *Mesh {
	m := &Mesh{Triangles: triangles}
	for _, tri := range triangles {
		m.radius = math.Max(m.radius, util.MaxLen(tri[0], tri[1], tri[2]))
	}
	return m
}

func (m *Mesh) BoundingRadius() float64 {
	return m.radius
}

func (m *Mesh) Collision(ray util.Ray3) (Collision, bool) {
	tIn := math.Inf(1)
	tOut := math.Inf(-1)
	var normal mgl64.Vec3
	for _, tri := range m.Triangles {
		t, triNormal, hit := intersectRayTriangle(ray, tri[0], tri[1], tri[2])
		if !hit {
			continue
		}
		if t < tIn {
			tIn = t
			normal = triNormal
		}
		if t > tOut {
			tOut = t
		}
	}
	if math.IsInf(tIn, 1) {
		return Collision{}, false
	}
	// face the normal against the ray so it points out of the surface that was entered
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Mul(-1)
	}
	return Collision{In: tIn, Out: tOut, Normal: normal}, true
}

// intersectRayTriangle is Möller-Trumbore, double-sided.
func intersectRayTriangle(ray util.Ray3, v0, v1, v2 mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	const epsilon = 0.000001

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, mgl64.Vec3{}, false // parallel to the triangle
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, mgl64.Vec3{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, mgl64.Vec3{}, false
	}

	t := f * edge2.Dot(q)
	if t < 0 {
		return 0, mgl64.Vec3{}, false // line hit behind the origin
	}
	return t, edge1.Cross(edge2).Normalize(), true
}
