package scene

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/bounds"
	"github.com/memmaker/raycaster/engine/util"
	"github.com/pkg/errors"
)

/*
Scene files start with the magic number "bndscene" followed by a gzip compressed
NBT compound:

	TAG_Compound({
	    "objects": TAG_List([
	        TAG_Compound({
	            "name": TAG_String(),
	            "x": TAG_Double(),
	            "y": TAG_Double(),
	            "z": TAG_Double(),
	            "shape": TAG_Compound({
	                "kind": TAG_String(),       box, sphere, compound, mesh, model-box
	                "min": TAG_List(TAG_Double), box
	                "max": TAG_List(TAG_Double), box
	                "yaw": TAG_Double(),         box, degrees
	                "center": TAG_List(TAG_Double), sphere, optional
	                "radius": TAG_Double(),      sphere
	                "model": TAG_String(),       mesh, model-box; relative to the scene file
	                "parts": TAG_List(TAG_Compound), compound
	            })
	        })
	        ...
	    ])
	})

Every shape carries all fields. Fields its kind does not use stay empty.
*/
const magicNumber = "bndscene"

const (
	KindBox      = "box"
	KindSphere   = "sphere"
	KindCompound = "compound"
	KindMesh     = "mesh"
	KindModelBox = "model-box"
)

type Definition struct {
	Objects []ObjectDefinition `nbt:"objects"`
}

type ObjectDefinition struct {
	Name  string          `nbt:"name"`
	X     float64         `nbt:"x"`
	Y     float64         `nbt:"y"`
	Z     float64         `nbt:"z"`
	Shape ShapeDefinition `nbt:"shape"`
}

type ShapeDefinition struct {
	Kind   string            `nbt:"kind"`
	Min    []float64         `nbt:"min"`
	Max    []float64         `nbt:"max"`
	Yaw    float64           `nbt:"yaw"`
	Center []float64         `nbt:"center"`
	Radius float64           `nbt:"radius"`
	Model  string            `nbt:"model"`
	Parts  []ShapeDefinition `nbt:"parts"`
}

func Place(name string, position mgl64.Vec3, shape ShapeDefinition) ObjectDefinition {
	return ObjectDefinition{Name: name, X: position.X(), Y: position.Y(), Z: position.Z(), Shape: shape}
}

func BoxShape(min, max mgl64.Vec3, yawDegrees float64) ShapeDefinition {
	return ShapeDefinition{Kind: KindBox, Min: min[:], Max: max[:], Yaw: yawDegrees}
}

func UnitBoxShape() ShapeDefinition {
	return BoxShape(bounds.UnitBox.Min, bounds.UnitBox.Max, 0)
}

func SphereShape(center mgl64.Vec3, radius float64) ShapeDefinition {
	return ShapeDefinition{Kind: KindSphere, Center: center[:], Radius: radius}
}

func CompoundShape(parts ...ShapeDefinition) ShapeDefinition {
	return ShapeDefinition{Kind: KindCompound, Parts: parts}
}

func MeshShape(model string) ShapeDefinition {
	return ShapeDefinition{Kind: KindMesh, Model: model}
}

func ModelBoxShape(model string) ShapeDefinition {
	return ShapeDefinition{Kind: KindModelBox, Model: model}
}

// Load reads a scene file and builds its objects. Model paths are resolved relative to
// the directory of the file.
func Load(filename string) ([]*Object, error) {
	fileReader, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer fileReader.Close()
	definition, err := ReadDefinition(bufio.NewReader(fileReader))
	if err != nil {
		util.LogIOError(fmt.Sprintf("[Load] %s: %v", filename, err))
		return nil, errors.Wrapf(err, "read scene %s", filename)
	}
	objects, err := definition.Build(filepath.Dir(filename))
	if err != nil {
		util.LogSceneError(fmt.Sprintf("[Load] %s: %v", filename, err))
		return nil, errors.Wrapf(err, "build scene %s", filename)
	}
	util.LogSceneInfo(fmt.Sprintf("[Load] %s: %d objects", filename, len(objects)))
	return objects, nil
}

func Save(filename string, definition Definition) error {
	fileWriter, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create scene")
	}
	if err = WriteDefinition(fileWriter, definition); err != nil {
		util.LogIOError(fmt.Sprintf("[Save] %s: %v", filename, err))
		fileWriter.Close()
		return errors.Wrapf(err, "write scene %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[Save] %s: %d objects", filename, len(definition.Objects)))
	return errors.Wrap(fileWriter.Close(), "close scene")
}

func ReadDefinition(r io.Reader) (Definition, error) {
	var magic [len(magicNumber)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Definition{}, errors.Wrap(err, "read magic number")
	}
	if string(magic[:]) != magicNumber {
		return Definition{}, errors.Errorf("invalid magic number %q", string(magic[:]))
	}
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return Definition{}, errors.Wrap(err, "open compressed body")
	}
	defer gzipReader.Close()
	var definition Definition
	if _, err = nbt.NewDecoder(gzipReader).Decode(&definition); err != nil {
		return Definition{}, errors.Wrap(err, "decode nbt")
	}
	return definition, nil
}

func WriteDefinition(w io.Writer, definition Definition) error {
	if _, err := io.WriteString(w, magicNumber); err != nil {
		return errors.Wrap(err, "write magic number")
	}
	gzipWriter := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gzipWriter).Encode(definition, ""); err != nil {
		return errors.Wrap(err, "encode nbt")
	}
	return errors.Wrap(gzipWriter.Close(), "flush compressed body")
}

// Build turns the definition into objects. Objects sharing a model share one mesh.
func (d Definition) Build(baseDir string) ([]*Object, error) {
	builder := &shapeBuilder{baseDir: baseDir, meshes: make(map[string]*bounds.Mesh)}
	objects := make([]*Object, 0, len(d.Objects))
	for index, objectDef := range d.Objects {
		shape, err := builder.build(objectDef.Shape)
		if err != nil {
			name := objectDef.Name
			if name == "" {
				name = fmt.Sprintf("#%d", index)
			}
			return nil, errors.Wrapf(err, "object %s", name)
		}
		position := mgl64.Vec3{objectDef.X, objectDef.Y, objectDef.Z}
		util.LogSceneDebug(fmt.Sprintf("[Build] %s at %s", objectDef.Name, util.FormatVec(position)))
		objects = append(objects, NewObject(objectDef.Name, position, shape))
	}
	return objects, nil
}

type shapeBuilder struct {
	baseDir string
	meshes  map[string]*bounds.Mesh
}

func (b *shapeBuilder) build(def ShapeDefinition) (bounds.Bound, error) {
	switch def.Kind {
	case KindBox:
		min, err := toVec("min", def.Min)
		if err != nil {
			return nil, err
		}
		max, err := toVec("max", def.Max)
		if err != nil {
			return nil, err
		}
		if min.X() > max.X() || min.Y() > max.Y() || min.Z() > max.Z() {
			return nil, errors.Errorf("box min %s is above max %s", util.FormatVec(min), util.FormatVec(max))
		}
		return bounds.NewBox(min, max, util.ToRadian(def.Yaw)), nil
	case KindSphere:
		var center mgl64.Vec3
		if len(def.Center) > 0 {
			var err error
			if center, err = toVec("center", def.Center); err != nil {
				return nil, err
			}
		}
		if def.Radius <= 0 {
			return nil, errors.Errorf("sphere radius %v must be positive", def.Radius)
		}
		return bounds.NewSphere(center, def.Radius), nil
	case KindCompound:
		parts := make([]bounds.Bound, 0, len(def.Parts))
		for index, partDef := range def.Parts {
			part, err := b.build(partDef)
			if err != nil {
				return nil, errors.Wrapf(err, "part %d", index)
			}
			parts = append(parts, part)
		}
		return bounds.NewCompound(parts...), nil
	case KindMesh:
		return b.mesh(def.Model)
	case KindModelBox:
		mesh, err := b.mesh(def.Model)
		if err != nil {
			return nil, err
		}
		return bounds.BoxAround(mesh.Triangles), nil
	}
	return nil, errors.Errorf("unknown shape kind %q", def.Kind)
}

func (b *shapeBuilder) mesh(model string) (*bounds.Mesh, error) {
	if model == "" {
		return nil, errors.New("missing model path")
	}
	if !filepath.IsAbs(model) {
		model = filepath.Join(b.baseDir, model)
	}
	if mesh, ok := b.meshes[model]; ok {
		return mesh, nil
	}
	mesh, err := bounds.LoadMeshGLTF(model)
	if err != nil {
		return nil, err
	}
	b.meshes[model] = mesh
	return mesh, nil
}

func toVec(field string, values []float64) (mgl64.Vec3, error) {
	switch len(values) {
	case 1:
		return mgl64.Vec3{values[0], values[0], values[0]}, nil
	case 3:
		return mgl64.Vec3{values[0], values[1], values[2]}, nil
	}
	return mgl64.Vec3{}, errors.Errorf("%s must be expressed as [x, y, z], got %d values", field, len(values))
}
