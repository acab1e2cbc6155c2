package bounds

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/util"
)

// UnitBox spans [0,1] on every axis, the shape of a full block.
var UnitBox = Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

// Box is an axis aligned box given by its local corners, optionally turned by Yaw
// radians around the local +Y axis.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
	Yaw float64
}

func NewBox(min, max mgl64.Vec3, yaw float64) Box {
	return Box{Min: min, Max: max, Yaw: yaw}
}


func (b Box) Contains(p mgl64.Vec3) bool {
	p = util.RotateY(p, -b.Yaw)
	return util.InRange(p.X(), b.Min.X(), b.Max.X()) &&
		util.InRange(p.Y(), b.Min.Y(), b.Max.Y()) &&
		util.InRange(p.Z(), b.Min.Z(), b.Max.Z())
}

func (b Box) BoundingRadius() float64 {
	return util.MaxLen(
		b.Min,
		mgl64.Vec3{b.Max.X(), b.Min.Y(), b.Min.Z()},
		mgl64.Vec3{b.Min.X(), b.Max.Y(), b.Min.Z()},
		mgl64.Vec3{b.Min.X(), b.Min.Y(), b.Max.Z()},
		mgl64.Vec3{b.Max.X(), b.Max.Y(), b.Min.Z()},
		mgl64.Vec3{b.Max.X(), b.Min.Y(), b.Max.Z()},
		mgl64.Vec3{b.Min.X(), b.Max.Y(), b.Max.Z()},
		b.Max,
	)
}

// Collision uses the slab method. A ray starting inside the box enters at 0 and
// reports the normal of the face it would have entered through.
func (b Box) Collision(ray util.Ray3) (Collision, bool) {
	local := util.NewRay3(util.RotateY(ray.Origin, -b.Yaw), util.RotateY(ray.Direction, -b.Yaw))
	inverse := local.InverseDirection()

	tIn := math.Inf(-1)
	tOut := math.Inf(1)
	var normal mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		o := local.Origin[axis]
		d := local.Direction[axis]
		lo := b.Min[axis]
		hi := b.Max[axis]
		if d == 0 {
			// parallel to this slab
			if o < lo || o > hi {
				return Collision{}, false
			}
			continue
		}
		t1 := (lo - o) * inverse[axis]
		t2 := (hi - o) * inverse[axis]
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tIn {
			tIn = t1
			normal = mgl64.Vec3{}
			normal[axis] = sign
		}
		if t2 < tOut {
			tOut = t2
		}
		if tIn > tOut {
			return Collision{}, false
		}
	}
	return clip(tIn, tOut, util.RotateY(normal, b.Yaw))
}

func (b Box) ToString() string {
	return fmt.Sprintf("Box(%s, %s, yaw=%.4g)", util.FormatVec(b.Min), util.FormatVec(b.Max), b.Yaw)
}
