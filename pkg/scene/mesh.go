package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/godim/pkg/geometry"
)

// Mesh is a filled triangle list with a placement transform
type Mesh struct {
	object
	Geometry *Geometry // local-space vertices, three per triangle
	Material *Material
	Position geometry.Vector3
	Rotation mgl64.Mat3
}

// NewMesh creates a mesh from local-space triangles at the origin
func NewMesh(material *Material, triangles ...geometry.Triangle) *Mesh {
	points := make([]geometry.Vector3, 0, len(triangles)*3)
	for _, tri := range triangles {
		points = append(points, tri.V1, tri.V2, tri.V3)
	}
	return &Mesh{
		object:   newObject(),
		Geometry: NewGeometry(points...),
		Material: material,
		Rotation: mgl64.Ident3(),
	}
}

// Kind returns KindMesh
func (m *Mesh) Kind() Kind {
	return KindMesh
}

// LookAt rotates the mesh so that its local +Z axis points along forward,
// keeping local +Y as close to up as possible.
func (m *Mesh) LookAt(forward, up geometry.Vector3) {
	m.Rotation = LookRotation(forward, up)
}

// Triangles returns the triangles transformed into world space
func (m *Mesh) Triangles() []geometry.Triangle {
	if m.Geometry == nil {
		return nil
	}
	local := m.Geometry.Vertices()
	out := make([]geometry.Triangle, 0, len(local)/3)
	for i := 0; i+2 < len(local); i += 3 {
		tri := geometry.NewTriangle(local[i], local[i+1], local[i+2])
		out = append(out, tri.Map(m.toWorld))
	}
	return out
}

func (m *Mesh) toWorld(v geometry.Vector3) geometry.Vector3 {
	return geometry.FromVec3(m.Rotation.Mul3x1(v.Vec3())).Add(m.Position)
}

// Dispose releases the geometry and an unshared material
func (m *Mesh) Dispose() {
	if m.disposed {
		return
	}
	if m.Geometry != nil {
		m.Geometry.Dispose()
	}
	releaseMaterial(m.Material)
	m.disposed = true
}

// LookRotation builds the rotation mapping local +Z onto forward with local
// +Y pointing towards up. When forward is parallel to up, the world Y axis
// (or X if forward is itself along Y) stands in for up.
func LookRotation(forward, up geometry.Vector3) mgl64.Mat3 {
	f := forward.Vec3()
	if f.Len() < 1e-12 {
		return mgl64.Ident3()
	}
	f = f.Normalize()

	u := up.Vec3()
	if u.Len() < 1e-12 || f.Cross(u).Len() < 1e-9 {
		u = mgl64.Vec3{0, 1, 0}
		if f.Cross(u).Len() < 1e-9 {
			u = mgl64.Vec3{1, 0, 0}
		}
	}

	x := u.Cross(f).Normalize()
	y := f.Cross(x)
	return mgl64.Mat3FromCols(x, y, f)
}
