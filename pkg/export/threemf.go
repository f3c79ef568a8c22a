package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/hpinc/go3mf"
	"github.com/philipparndt/prints/pkg/stl"
)

// Write3MF writes a 3MF package holding model as a single object. The
// flattened parameters are stored in the Description metadata entry.
func Write3MF(w io.Writer, model *stl.Model, meta Metadata) error {
	doc := go3mf.Model{Units: go3mf.UnitMillimeter, Language: "en-US"}
	addMetadata := func(name, value string) {
		if value != "" {
			doc.Metadata = append(doc.Metadata, go3mf.Metadata{Name: xml.Name{Local: name}, Value: value})
		}
	}
	addMetadata("Title", meta.Title)
	addMetadata("Application", meta.Application)
	addMetadata("Description", strings.Join(meta.paramLines(), "\n"))

	indexed := model.Indexed()
	mesh := &go3mf.Mesh{}
	mesh.Vertices.Vertex = make([]go3mf.Point3D, 0, len(indexed.Vertices))
	for _, v := range indexed.Vertices {
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, go3mf.Point3D{float32(v.X), float32(v.Y), float32(v.Z)})
	}
	mesh.Triangles.Triangle = make([]go3mf.Triangle, 0, len(indexed.Faces))
	for _, f := range indexed.Faces {
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{V1: uint32(f[0]), V2: uint32(f[1]), V3: uint32(f[2])})
	}

	obj := &go3mf.Object{ID: 1, Type: go3mf.ObjectTypeModel, Name: model.Name, Mesh: mesh}
	doc.Resources.Objects = append(doc.Resources.Objects, obj)
	doc.Build.Items = append(doc.Build.Items, &go3mf.Item{ObjectID: obj.ID})

	if err := go3mf.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode 3MF package: %w", err)
	}
	return nil
}
