package obj

import (
	"errors"
	"strings"
	"testing"
)

func decodeString(t *testing.T, src string) *Mesh {
	t.Helper()
	mesh, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return mesh
}

func TestDecode_Minimal(t *testing.T) {
	mesh := decodeString(t, "v 1 2 3\nv 4 5 6\nf 1 2 1\n")

	wantVerts := []float32{0, 0, 0, 1, 2, 3, 4, 5, 6}
	if len(mesh.Vertices) != len(wantVerts) {
		t.Fatalf("expected %d vertex floats, got %d", len(wantVerts), len(mesh.Vertices))
	}
	for i, v := range wantVerts {
		if mesh.Vertices[i] != v {
			t.Errorf("vertex float %d: got %f, want %f", i, mesh.Vertices[i], v)
		}
	}

	wantIdx := []uint32{1, 2, 1}
	if len(mesh.Indices) != len(wantIdx) {
		t.Fatalf("expected %d indices, got %d", len(wantIdx), len(mesh.Indices))
	}
	for i, idx := range wantIdx {
		if mesh.Indices[i] != idx {
			t.Errorf("index %d: got %d, want %d", i, mesh.Indices[i], idx)
		}
	}
}

func TestDecode_SentinelVertex(t *testing.T) {
	mesh := decodeString(t, "v 7 8 9\n")

	if mesh.VertexCount() != 2 {
		t.Fatalf("expected 2 points (sentinel + 1), got %d", mesh.VertexCount())
	}
	if mesh.Vertices[0] != 0 || mesh.Vertices[1] != 0 || mesh.Vertices[2] != 0 {
		t.Error("storage index 0 should be the zero sentinel")
	}
	if mesh.Vertices[3] != 7 {
		t.Errorf("first user vertex should start at storage index 1, got x=%f", mesh.Vertices[3])
	}
}

func TestDecode_SlashSubFields(t *testing.T) {
	src := "v 0 0 1\nv 0 1 0\nv 1 0 0\nf 1/4/7 2/5/8 3/6/9\n"
	mesh := decodeString(t, src)

	wantIdx := []uint32{1, 2, 3}
	for i, idx := range wantIdx {
		if mesh.Indices[i] != idx {
			t.Errorf("index %d: got %d, want %d (only the first sub-field counts)", i, mesh.Indices[i], idx)
		}
	}
}

func TestDecode_QuadFaceReadsFirstThree(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	mesh := decodeString(t, src)

	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}
	if mesh.Indices[0] != 1 || mesh.Indices[1] != 2 || mesh.Indices[2] != 3 {
		t.Errorf("quad face should keep only the first three references, got %v", mesh.Indices)
	}
}

func TestDecode_SkipsGroupsAndUnknownPrefixes(t *testing.T) {
	src := strings.Join([]string{
		"# a comment",
		"g body",
		"v 1 1 1",
		"vn 0 1 0",
		"vt 0.5 0.5",
		"usemtl steel",
		"",
	}, "\n")
	mesh := decodeString(t, src)

	if mesh.VertexCount() != 2 {
		t.Errorf("expected sentinel + 1 vertex, got %d points", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 0 {
		t.Errorf("expected no triangles, got %d", mesh.TriangleCount())
	}
}

func TestDecode_ForwardFaceReference(t *testing.T) {
	// Faces may cite vertices that appear later in the file.
	src := "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"
	mesh := decodeString(t, src)

	if mesh.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", mesh.TriangleCount())
	}
}

func TestDecode_MalformedVertex(t *testing.T) {
	cases := map[string]string{
		"missing z":   "v 1 2\n",
		"bad float":   "v 1 2 potato\n",
		"only prefix": "v\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			if !errors.Is(err, ErrMalformedVertex) {
				t.Errorf("expected ErrMalformedVertex, got %v", err)
			}
		})
	}
}

func TestDecode_MalformedFace(t *testing.T) {
	cases := map[string]string{
		"two references":  "v 0 0 0\nv 1 1 1\nf 1 2\n",
		"bad index":       "v 0 0 0\nf a b c\n",
		"empty sub-field": "v 0 0 0\nf /1 /2 /3\n",
		"negative index":  "v 0 0 0\nf -1 -2 -3\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			if !errors.Is(err, ErrMalformedFace) {
				t.Errorf("expected ErrMalformedFace, got %v", err)
			}
		})
	}
}

func TestDecode_IndexOutOfRange(t *testing.T) {
	_, err := Decode(strings.NewReader("v 0 0 0\nf 1 1 9\n"))
	if !errors.Is(err, ErrMalformedFace) {
		t.Errorf("out-of-range index should be ErrMalformedFace, got %v", err)
	}

	// Index 0 would address the sentinel.
	_, err = Decode(strings.NewReader("v 0 0 0\nf 0 1 1\n"))
	if !errors.Is(err, ErrMalformedFace) {
		t.Errorf("index 0 should be ErrMalformedFace, got %v", err)
	}
}

func TestDecode_ErrorReportsLineNumber(t *testing.T) {
	_, err := Decode(strings.NewReader("v 0 0 0\nv 1 2\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error mentioning line 2, got %v", err)
	}
}

func TestDecode_AllIndicesInRange(t *testing.T) {
	src := strings.Join([]string{
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"v 0 0 1",
		"f 1 2 3",
		"f 2 3 4",
		"f 4/1 1/2 3/3",
		"",
	}, "\n")
	mesh := decodeString(t, src)

	count := uint32(mesh.VertexCount())
	for i, idx := range mesh.Indices {
		if idx == 0 || idx >= count {
			t.Errorf("index %d out of range: %d (vertex count %d)", i, idx, count)
		}
	}
}

func TestDecode_Empty(t *testing.T) {
	mesh := decodeString(t, "")

	if mesh.VertexCount() != 1 {
		t.Errorf("empty input should still hold the sentinel, got %d points", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 0 {
		t.Errorf("empty input should hold no triangles, got %d", mesh.TriangleCount())
	}
}
