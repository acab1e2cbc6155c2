package bounds

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func quadDocument() *gltf.Document {
	doc := gltf.NewDocument()
	positions := modeler.WritePosition(doc, [][3]float32{
		{0, 0, 0}, {2, 0, 0}, {2, 1, 0}, {0, 1, 0},
	})
	indices := modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3})
	doc.Meshes = []*gltf.Mesh{{
		Name: "quad",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indices),
			Attributes: map[string]uint32{"POSITION": positions},
		}},
	}}
	return doc
}

func TestReadTriangles(t *testing.T) {
	triangles, err := readTriangles(quadDocument())
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(triangles))
	}
	if triangles[1][2] != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("last corner = %v", triangles[1][2])
	}
	box := BoxAround(triangles)
	if box.Min != (mgl64.Vec3{0, 0, 0}) || box.Max != (mgl64.Vec3{2, 1, 0}) {
		t.Errorf("box = %s", box.ToString())
	}
}

func TestLoadMeshGLTF(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "quad.glb")
	if err := gltf.SaveBinary(quadDocument(), filename); err != nil {
		t.Fatal(err)
	}
	mesh, err := LoadMeshGLTF(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Triangles) != 2 {
		t.Fatalf("got %d triangles", len(mesh.Triangles))
	}
	box, err := LoadBoxGLTF(filename)
	if err != nil {
		t.Fatal(err)
	}
	if box.Max != (mgl64.Vec3{2, 1, 0}) {
		t.Errorf("box = %s", box.ToString())
	}
}

func TestLoadMeshGLTFMissingFile(t *testing.T) {
	if _, err := LoadMeshGLTF(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMeshGLTFWithoutTriangles(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.gltf")
	if err := gltf.Save(gltf.NewDocument(), filename); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMeshGLTF(filename); err == nil || !strings.Contains(err.Error(), "no triangles") {
		t.Errorf("expected a no triangles error, got %v", err)
	}
}
