package util

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

func ToRadian(angle float64) float64 {
	return mgl64.DegToRad(angle)
}

func InRange(x, min, max float64) bool {
	return x >= min && x <= max
}

// RotateY rotates v around the +Y axis by angle radians.
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	if angle == 0 {
		return v
	}
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

func MaxLen(points ...mgl64.Vec3) float64 {
	maxLen := 0.0
	for _, p := range points {
		if l := p.Len(); l > maxLen {
			maxLen = l
		}
	}
	return maxLen
}

// ParseVec parses "x,y,z" the way the scene tools write vectors. A single number is
// broadcast to all three axes.
func ParseVec(text string) (mgl64.Vec3, bool) {
	fields := strings.Split(text, ",")
	if len(fields) != 1 && len(fields) != 3 {
		return mgl64.Vec3{}, false
	}
	var parts [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return mgl64.Vec3{}, false
		}
		parts[i] = value
	}
	if len(fields) == 1 {
		return mgl64.Vec3{parts[0], parts[0], parts[0]}, true
	}
	return mgl64.Vec3{parts[0], parts[1], parts[2]}, true
}
