package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/prints/pkg/geometry"
)

// ErrFormat reports input that is neither valid ASCII nor binary STL.
var ErrFormat = errors.New("malformed STL")

const (
	binaryHeaderSize = 84
	binaryRecordSize = 50
)

// Parse reads an STL file and returns a Model. A file that starts with
// "solid" is still read as binary when its size matches the binary layout
// exactly; some exporters write such headers.
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	size := int64(-1)
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}
	return read(file, size)
}

// Read parses ASCII or binary STL from r.
func Read(r io.Reader) (*Model, error) {
	return read(r, -1)
}

func read(r io.Reader, size int64) (*Model, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(binaryHeaderSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	if bytes.HasPrefix(head, []byte("solid")) && !binarySized(head, size) {
		return parseASCII(br)
	}
	return parseBinary(br)
}

// binarySized reports whether the triangle count in a binary header
// accounts for exactly size bytes.
func binarySized(head []byte, size int64) bool {
	if size < 0 || len(head) < binaryHeaderSize {
		return false
	}
	count := int64(binary.LittleEndian.Uint32(head[80:]))
	return size == binaryHeaderSize+count*binaryRecordSize
}

func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var normal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			model.Name = strings.Join(fields[1:], " ")

		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("%w: line %d: expected 'facet normal x y z'", ErrFormat, lineNo)
			}
			v, err := parseVector(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, lineNo, err)
			}
			normal = v
			vertices = vertices[:0]

		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: expected 'vertex x y z'", ErrFormat, lineNo)
			}
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, lineNo, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrFormat, lineNo, len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// parseBinary decodes the layout WriteBinary produces.
func parseBinary(reader io.Reader) (*Model, error) {
	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("%w: short header: %w", ErrFormat, err)
	}

	model := NewModel(string(bytes.TrimRight(header[:80], "\x00 ")))
	count := binary.LittleEndian.Uint32(header[80:])

	record := make([]byte, binaryRecordSize)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(reader, record); err != nil {
			return nil, fmt.Errorf("%w: triangle %d of %d: %w", ErrFormat, i, count, err)
		}

		var v [4]geometry.Vector3
		for j := range v {
			v[j] = geometry.NewVector3(
				float64(math.Float32frombits(binary.LittleEndian.Uint32(record[j*12:]))),
				float64(math.Float32frombits(binary.LittleEndian.Uint32(record[j*12+4:]))),
				float64(math.Float32frombits(binary.LittleEndian.Uint32(record[j*12+8:]))),
			)
		}
		model.AddTriangle(geometry.NewTriangle(v[0], v[1], v[2], v[3]))
	}

	return model, nil
}
