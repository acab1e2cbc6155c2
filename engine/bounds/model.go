package bounds

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/util"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadMeshGLTF reads the triangles of every mesh in a glTF or GLB file. Positions are
// taken in mesh space, node transforms are not applied.
func LoadMeshGLTF(filename string) (*Mesh, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open model %s", filename)
	}
	triangles, err := readTriangles(doc)
	if err != nil {
		util.LogBoundsError(fmt.Sprintf("[LoadMeshGLTF] %s: %v", filename, err))
		return nil, errors.Wrapf(err, "read model %s", filename)
	}
	if len(triangles) == 0 {
		util.LogBoundsError(fmt.Sprintf("[LoadMeshGLTF] %s: no triangles", filename))
		return nil, errors.Errorf("model %s contains no triangles", filename)
	}
	util.LogBoundsDebug(fmt.Sprintf("[LoadMeshGLTF] %s: %d triangles", filename, len(triangles)))
	return NewMesh(triangles), nil
}

// LoadBoxGLTF returns the axis aligned box around every triangle of a model.
func LoadBoxGLTF(filename string) (Box, error) {
	mesh, err := LoadMeshGLTF(filename)
	if err != nil {
		return Box{}, err
	}
	return BoxAround(mesh.Triangles), nil
}

func BoxAround(triangles [][3]mgl64.Vec3) Box {
	if len(triangles) == 0 {
		return Box{}
	}
	min := triangles[0][0]
	max := triangles[0][0]
	for _, tri := range triangles {
		for _, v := range tri {
			for axis := 0; axis < 3; axis++ {
				if v[axis] < min[axis] {
					min[axis] = v[axis]
				}
				if v[axis] > max[axis] {
					max[axis] = v[axis]
				}
			}
		}
	}
	return Box{Min: min, Max: max}
}

func readTriangles(doc *gltf.Document) ([][3]mgl64.Vec3, error) {
	var triangles [][3]mgl64.Vec3
	for meshIndex, mesh := range doc.Meshes {
		for primIndex, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				util.LogBoundsDebug(fmt.Sprintf("[readTriangles] skipping primitive %d of mesh %d: mode %v", primIndex, meshIndex, primitive.Mode))
				continue
			}
			positionIndex, ok := primitive.Attributes["POSITION"]
			if !ok {
				continue
			}
			var vertBuffer [][3]float32
			vertBuffer, err := modeler.ReadPosition(doc, doc.Accessors[positionIndex], vertBuffer)
			if err != nil {
				return nil, errors.Wrapf(err, "mesh %d primitive %d positions", meshIndex, primIndex)
			}
			var indicesBuffer []uint32
			if primitive.Indices != nil {
				indicesBuffer, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], indicesBuffer)
				if err != nil {
					return nil, errors.Wrapf(err, "mesh %d primitive %d indices", meshIndex, primIndex)
				}
			} else {
				indicesBuffer = make([]uint32, len(vertBuffer))
				for i := range indicesBuffer {
					indicesBuffer[i] = uint32(i)
				}
			}
			for i := 0; i+2 < len(indicesBuffer); i += 3 {
				var tri [3]mgl64.Vec3
				for corner := 0; corner < 3; corner++ {
					index := indicesBuffer[i+corner]
					if int(index) >= len(vertBuffer) {
						return nil, errors.Errorf("mesh %d primitive %d: index %d out of range", meshIndex, primIndex, index)
					}
					v := vertBuffer[index]
					tri[corner] = mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
				}
				triangles = append(triangles, tri)
			}
		}
	}
	return triangles, nil
}
