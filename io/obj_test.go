package io

import (
	"os"
	"path/filepath"
	"testing"

	"pathtracer/materials"
	"pathtracer/textures"
	"pathtracer/vmath"
)

func TestLoadOBJTrianglesTriangulatesQuad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.obj")
	contents := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	mat := materials.NewLambertian(textures.NewSolid(vmath.ColorWhite))
	tris, err := LoadOBJTriangles(path, mat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected a fan-triangulated quad to yield 2 triangles, got %d", len(tris))
	}
}

func TestLoadOBJTrianglesMissingFile(t *testing.T) {
	mat := materials.NewLambertian(textures.NewSolid(vmath.ColorWhite))
	if _, err := LoadOBJTriangles("/nonexistent/path.obj", mat); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
