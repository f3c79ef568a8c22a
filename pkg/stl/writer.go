package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteBinary encodes the model as binary STL: an 80-byte header holding
// the model name, a little-endian triangle count and one 50-byte record
// per facet.
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, 80)
	copy(header, m.Name)
	// ASCII readers sniff for a leading "solid"; never emit one.
	if len(m.Name) >= 5 && m.Name[:5] == "solid" {
		header[0] = '_'
	}
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	record := make([]byte, 50)
	for i, triangle := range m.Triangles {
		normal := triangle.Normal
		if normal.Length() == 0 {
			normal = triangle.CalculateNormal()
		}
		for j, v := range [4][3]float64{
			{normal.X, normal.Y, normal.Z},
			{triangle.V1.X, triangle.V1.Y, triangle.V1.Z},
			{triangle.V2.X, triangle.V2.Y, triangle.V2.Z},
			{triangle.V3.X, triangle.V3.Y, triangle.V3.Z},
		} {
			for k, c := range v {
				binary.LittleEndian.PutUint32(record[j*12+k*4:], math.Float32bits(float32(c)))
			}
		}
		// attribute byte count stays zero
		record[48], record[49] = 0, 0

		if _, err := bw.Write(record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}
