package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pathtracer/core"
	"pathtracer/scene"
	"pathtracer/vmath"
)

// LoadOBJTriangles parses a Wavefront .obj file into triangles sharing a
// single material, fan-triangulating any polygonal face. Grounded on the
// teacher's scene/obj_loader.go, stripped of its MTL/material handling
// since material resolution happens before primitives are built here
// (spec.md §6).
func LoadOBJTriangles(path string, mat core.Material) ([]*scene.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	var positions []vmath.Vec3
	var uvs []vmath.UV
	type faceVertex struct{ v, vt int }
	var faces [][]faceVertex

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			positions = append(positions, vmath.New(x, y, z))

		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(fields[1], 64)
			v, _ := strconv.ParseFloat(fields[2], 64)
			uvs = append(uvs, vmath.UV{U: u, V: v})

		case "f":
			if len(fields) < 4 {
				continue
			}
			verts := make([]faceVertex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				verts = append(verts, parseOBJFaceVertex(tok))
			}
			faces = append(faces, verts)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}

	safePos := func(i int) vmath.Vec3 {
		if i >= 0 && i < len(positions) {
			return positions[i]
		}
		return vmath.Zero
	}
	safeUV := func(i int) vmath.UV {
		if i >= 0 && i < len(uvs) {
			return uvs[i]
		}
		return vmath.UV{}
	}
	hasUVs := len(uvs) > 0

	var triangles []*scene.Triangle
	for _, face := range faces {
		// Fan-triangulate: 0-1-2, 0-2-3, 0-3-4, ...
		for i := 1; i+1 < len(face); i++ {
			f0, f1, f2 := face[0], face[i], face[i+1]
			v0, v1, v2 := safePos(f0.v), safePos(f1.v), safePos(f2.v)
			if hasUVs {
				triangles = append(triangles, scene.NewTriangleUV(
					v0, v1, v2,
					safeUV(f0.vt), safeUV(f1.vt), safeUV(f2.vt),
					mat,
				))
			} else {
				triangles = append(triangles, scene.NewTriangle(v0, v1, v2, mat))
			}
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("no geometry found in %q", path)
	}
	return triangles, nil
}

// parseOBJFaceVertex parses one face-vertex token: "v", "v/vt", "v//vn", or
// "v/vt/vn". Returns 0-based indices (-1 if absent); OBJ indices are 1-based.
func parseOBJFaceVertex(tok string) struct{ v, vt int } {
	parseIdx := func(s string) int {
		if s == "" {
			return -1
		}
		n, _ := strconv.Atoi(s)
		if n > 0 {
			return n - 1
		}
		return -1
	}
	parts := strings.Split(tok, "/")
	res := struct{ v, vt int }{v: -1, vt: -1}
	if len(parts) > 0 {
		res.v = parseIdx(parts[0])
	}
	if len(parts) > 1 {
		res.vt = parseIdx(parts[1])
	}
	return res
}
