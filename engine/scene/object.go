// Package scene describes sets of boundable objects and stores them on disk.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/bounds"
	"github.com/memmaker/raycaster/engine/raycast"
	"github.com/memmaker/raycaster/engine/util"
)

// Object is a named bound placed at a world position.
type Object struct {
	Name     string
	Position mgl64.Vec3
	Shape    bounds.Bound
}

func NewObject(name string, position mgl64.Vec3, shape bounds.Bound) *Object {
	return &Object{Name: name, Position: position, Shape: shape}
}

func (o *Object) Origin() mgl64.Vec3 {
	return o.Position
}

func (o *Object) Bound() bounds.Bound {
	return o.Shape
}

func (o *Object) GetName() string {
	return o.Name
}

func (o *Object) ToString() string {
	return fmt.Sprintf("%s at %s", o.Name, util.FormatVec(o.Position))
}

// Skip returns a predicate rejecting the objects with the given names.
func Skip(names ...string) raycast.Predicate[*Object] {
	if len(names) == 0 {
		return nil
	}
	skipped := make(map[string]bool, len(names))
	for _, name := range names {
		skipped[name] = true
	}
	return func(object *Object) bool {
		return !skipped[object.Name]
	}
}

type Strategy string

const (
	StrategyList    Strategy = "list"
	StrategySorted  Strategy = "sorted"
	StrategyOrdered Strategy = "ordered"
)

// NewRaycast builds a raycast over objects using the named strategy.
func NewRaycast(strategy Strategy, objects []*Object) (*raycast.Raycast[*Object], bool) {
	switch strategy {
	case StrategyList:
		return raycast.New[*Object](raycast.NewListScene(objects...)), true
	case StrategySorted:
		return raycast.New[*Object](raycast.NewSortedScene(objects...)), true
	case StrategyOrdered:
		return raycast.New[*Object](raycast.NewOrderedScene(objects...)), true
	}
	return nil, false
}
