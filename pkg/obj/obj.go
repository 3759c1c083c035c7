// Package obj parses Wavefront OBJ mesh descriptions into flat vertex and
// index buffers suitable for GPU upload.
//
// Only vertex positions (`v`) and triangular faces (`f`) are decoded. Groups
// (`g`) and every other prefix are skipped. Face tokens may carry
// `/`-separated sub-fields (texture and normal references); only the leading
// vertex index is used.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrMalformedVertex = errors.New("malformed vertex line")
	ErrMalformedFace   = errors.New("malformed face line")
)

// Mesh holds a decoded mesh as flattened buffers.
//
// Vertices stores xyz triples in parse order. The first triple is a reserved
// zero sentinel so that the 1-based indices written in OBJ files address
// storage positions directly, with no translation on the way to the GPU.
// Indices stores one uint32 triple per triangle; a valid index is always
// greater than zero (the sentinel is never referenced) and less than
// VertexCount.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of stored points, sentinel included.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of decoded faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Decode reads a mesh description from r in a single forward pass.
//
// Decoding is all-or-nothing: the first malformed line aborts with an error
// wrapping ErrMalformedVertex or ErrMalformedFace, and no partial Mesh is
// returned. Face indices are validated against the final vertex count after
// the pass, so a face may reference a vertex defined later in the file.
func Decode(r io.Reader) (*Mesh, error) {
	mesh := &Mesh{
		// Sentinel point at storage index 0 backs 1-based face indices.
		Vertices: []float32{0, 0, 0},
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if err := parseVertex(mesh, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "f":
			if err := parseFace(mesh, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			// Groups, normals, texcoords, comments: skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh description: %w", err)
	}

	if err := validateIndices(mesh); err != nil {
		return nil, err
	}

	return mesh, nil
}

// parseVertex appends one xyz point from the tokens after the `v` prefix.
func parseVertex(mesh *Mesh, tokens []string) error {
	if len(tokens) < 3 {
		return fmt.Errorf("%w: want 3 coordinates, have %d", ErrMalformedVertex, len(tokens))
	}
	for _, tok := range tokens[:3] {
		coord, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return fmt.Errorf("%w: coordinate %q", ErrMalformedVertex, tok)
		}
		mesh.Vertices = append(mesh.Vertices, float32(coord))
	}
	return nil
}

// parseFace appends one triangle from the tokens after the `f` prefix.
// Exactly the first three vertex references are consumed; extra tokens on
// polygon faces are dropped without error (known limitation, kept to match
// the shipped behavior).
func parseFace(mesh *Mesh, tokens []string) error {
	if len(tokens) < 3 {
		return fmt.Errorf("%w: want 3 vertex references, have %d", ErrMalformedFace, len(tokens))
	}
	for _, tok := range tokens[:3] {
		// "7/2/3" references vertex 7; only the first sub-field matters here.
		ref, _, _ := strings.Cut(tok, "/")
		idx, err := strconv.ParseUint(ref, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: vertex reference %q", ErrMalformedFace, tok)
		}
		mesh.Indices = append(mesh.Indices, uint32(idx))
	}
	return nil
}

// validateIndices checks that every face index addresses a real vertex.
// Index 0 would hit the sentinel and is as malformed as an out-of-range one.
func validateIndices(mesh *Mesh) error {
	count := uint32(mesh.VertexCount())
	for _, idx := range mesh.Indices {
		if idx == 0 || idx >= count {
			return fmt.Errorf("%w: vertex reference %d out of range [1, %d)",
				ErrMalformedFace, idx, count)
		}
	}
	return nil
}
