package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray3 is a half-line starting at Origin. Direction does not have to be normalized,
// distances along the ray are measured in multiples of Direction.
type Ray3 struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

func NewRay3(origin, direction mgl64.Vec3) Ray3 {
	return Ray3{Origin: origin, Direction: direction}
}

// At returns the same ray starting at a new origin.
func (r Ray3) At(origin mgl64.Vec3) Ray3 {
	return Ray3{Origin: origin, Direction: r.Direction}
}

// Point returns origin + direction * t.
func (r Ray3) Point(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

func (r Ray3) IsDegenerate() bool {
	return r.Direction.X() == 0 && r.Direction.Y() == 0 && r.Direction.Z() == 0
}

// InverseDirection is 1/direction per axis. Zero components become +/-Inf.
func (r Ray3) InverseDirection() mgl64.Vec3 {
	return mgl64.Vec3{1 / r.Direction.X(), 1 / r.Direction.Y(), 1 / r.Direction.Z()}
}

// Project returns the ray parameter of the point on the ray's line closest to p.
func (r Ray3) Project(p mgl64.Vec3) float64 {
	lenSq := r.Direction.Dot(r.Direction)
	if lenSq == 0 {
		return 0
	}
	return p.Sub(r.Origin).Dot(r.Direction) / lenSq
}

func (r Ray3) ToString() string {
	return fmt.Sprintf("Ray3(%s -> %s)", FormatVec(r.Origin), FormatVec(r.Direction))
}

func FormatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X(), v.Y(), v.Z())
}

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
