package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/prints/pkg/stl"
)

// stepWriter numbers entities as they are emitted.
type stepWriter struct {
	w    *bufio.Writer
	next int
	err  error
}

func (s *stepWriter) entity(format string, args ...any) int {
	s.next++
	if s.err == nil {
		_, s.err = fmt.Fprintf(s.w, "#%d=%s;\n", s.next, fmt.Sprintf(format, args...))
	}
	return s.next
}

func (s *stepWriter) line(text string) {
	if s.err == nil {
		_, s.err = s.w.WriteString(text + "\n")
	}
}

// stepReal formats a REAL; the exchange syntax requires a decimal point.
func stepReal(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += "."
	}
	return out
}

func stepString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func refs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + strconv.Itoa(id)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// WriteSTEP writes model as an AP214 faceted B-rep in millimetres. All
// facets go into one closed shell.
func WriteSTEP(w io.Writer, model *stl.Model, meta Metadata) error {
	title := meta.Title
	if title == "" {
		title = model.Name
	}
	description := strings.Join(meta.paramLines(), " ")

	s := &stepWriter{w: bufio.NewWriter(w)}
	s.line("ISO-10303-21;")
	s.line("HEADER;")
	s.line(fmt.Sprintf("FILE_DESCRIPTION((%s),'2;1');", stepString(description)))
	s.line(fmt.Sprintf("FILE_NAME(%s,'',(''),(''),%s,%s,'');",
		stepString(title), stepString(meta.Application), stepString(meta.Application)))
	s.line("FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));")
	s.line("ENDSEC;")
	s.line("DATA;")

	appContext := s.entity("APPLICATION_CONTEXT('core data for automotive mechanical design processes')")
	s.entity("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2000,#%d)", appContext)
	productContext := s.entity("PRODUCT_CONTEXT('',#%d,'mechanical')", appContext)
	product := s.entity("PRODUCT(%s,%s,'',(#%d))", stepString(title), stepString(title), productContext)
	s.entity("PRODUCT_RELATED_PRODUCT_CATEGORY('part',$,(#%d))", product)
	formation := s.entity("PRODUCT_DEFINITION_FORMATION('','',#%d)", product)
	defContext := s.entity("PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design')", appContext)
	definition := s.entity("PRODUCT_DEFINITION('design','',#%d,#%d)", formation, defContext)
	shape := s.entity("PRODUCT_DEFINITION_SHAPE('','',#%d)", definition)

	lengthUnit := s.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	angleUnit := s.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	solidAngleUnit := s.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	uncertainty := s.entity("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-07),#%d,'distance_accuracy_value','confusion accuracy')", lengthUnit)
	geomContext := s.entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#%d))GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('',''))",
		uncertainty, lengthUnit, angleUnit, solidAngleUnit)

	origin := s.entity("CARTESIAN_POINT('',(0.,0.,0.))")
	zAxis := s.entity("DIRECTION('',(0.,0.,1.))")
	xAxis := s.entity("DIRECTION('',(1.,0.,0.))")
	placement := s.entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", origin, zAxis, xAxis)

	mesh := model.Indexed()
	points := make([]int, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		points[i] = s.entity("CARTESIAN_POINT('',(%s,%s,%s))", stepReal(v.X), stepReal(v.Y), stepReal(v.Z))
	}

	faces := make([]int, 0, len(mesh.Faces))
	for _, f := range mesh.Faces {
		a, b, c := mesh.Vertices[f[0]], mesh.Vertices[f[1]], mesh.Vertices[f[2]]
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
		ref := b.Sub(a).Normalize()

		loop := s.entity("POLY_LOOP('',%s)", refs([]int{points[f[0]], points[f[1]], points[f[2]]}))
		bound := s.entity("FACE_OUTER_BOUND('',#%d,.T.)", loop)
		axis := s.entity("DIRECTION('',(%s,%s,%s))", stepReal(normal.X), stepReal(normal.Y), stepReal(normal.Z))
		refDir := s.entity("DIRECTION('',(%s,%s,%s))", stepReal(ref.X), stepReal(ref.Y), stepReal(ref.Z))
		facePlacement := s.entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", points[f[0]], axis, refDir)
		plane := s.entity("PLANE('',#%d)", facePlacement)
		faces = append(faces, s.entity("FACE_SURFACE('',(#%d),#%d,.T.)", bound, plane))
	}

	shell := s.entity("CLOSED_SHELL('',%s)", refs(faces))
	brep := s.entity("FACETED_BREP(%s,#%d)", stepString(title), shell)
	representation := s.entity("FACETED_BREP_SHAPE_REPRESENTATION(%s,(#%d,#%d),#%d)", stepString(title), placement, brep, geomContext)
	s.entity("SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", shape, representation)

	s.line("ENDSEC;")
	s.line("END-ISO-10303-21;")
	if s.err != nil {
		return fmt.Errorf("failed to write STEP data: %w", s.err)
	}
	return s.w.Flush()
}
