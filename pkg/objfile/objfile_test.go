package objfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0.5, 0}}
	if err := Write(&buf, positions, []uint32{0, 1, 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "# 3 vertices, 1 triangles\nv 0 0 0\nv 1 0 0\nv 0 0.5 0\nf 1 2 3\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteReadKeepsExactValues(t *testing.T) {
	positions := []mgl32.Vec3{{0.1, -0.3333333, 0}, {0.8660254, 0.5, 0}, {1e-7, 2, 0}}
	indices := []uint32{0, 1, 2, 2, 1, 0}

	var buf bytes.Buffer
	if err := Write(&buf, positions, indices); err != nil {
		t.Fatalf("Write: %v", err)
	}
	gotPos, gotIdx, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i := range positions {
		if gotPos[i] != positions[i] {
			t.Errorf("vertex %d = %v, want %v", i, gotPos[i], positions[i])
		}
	}
	for i := range indices {
		if gotIdx[i] != indices[i] {
			t.Fatalf("indices = %v, want %v", gotIdx, indices)
		}
	}
}

func TestReadFaceForms(t *testing.T) {
	src := `# comment
o flake
v 0 0 0
v 1 0 0
vt 0 0
v 0 1 0
f 1/1 2//1 3/1/1
f -3 -2 -1
`
	_, idx, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []uint32{0, 1, 2, 0, 1, 2}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("indices = %v, want %v", idx, want)
		}
	}
}

func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"quad":         "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n",
		"out of range": "v 0 0 0\nf 1 2 3\n",
		"zero index":   "v 0 0 0\nf 0 1 1\n",
		"short vertex": "v 0 0\n",
		"bad float":    "v 0 x 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := Read(strings.NewReader(src)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestWriteRejectsDangling(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []mgl32.Vec3{{}}, []uint32{0, 0, 1}); err == nil {
		t.Fatal("expected error")
	}
	if err := Write(&buf, nil, []uint32{0}); err == nil {
		t.Fatal("expected error")
	}
}
