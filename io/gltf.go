// Package io adapts external mesh formats (glTF, OBJ) into flat triangle
// lists with positions and optional per-vertex UVs, per spec.md §6: "the
// loader delivers an array of triangles... the core does not parse file
// formats." Grounded on the teacher's scene/gltf_loader.go and
// scene/obj_loader.go, generalized from GPU vertex buffers to
// scene.Triangle primitives with a caller-supplied material.
package io

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"pathtracer/core"
	"pathtracer/scene"
	"pathtracer/vmath"
)

// LoadGLTFTriangles opens a .glb or .gltf file and flattens every mesh
// primitive's positions (and TEXCOORD_0, if present) into triangles sharing
// a single material. Unlike the teacher's loader it ignores glTF materials,
// textures and the node hierarchy entirely — scene assembly in this core
// resolves materials before primitives are constructed (spec.md §6).
func LoadGLTFTriangles(path string, mat core.Material) ([]*scene.Triangle, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var triangles []*scene.Triangle
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			tris, err := gltfPrimitiveTriangles(doc, prim, mat)
			if err != nil {
				return nil, fmt.Errorf("gltf mesh %d primitive %d: %w", mi, pi, err)
			}
			triangles = append(triangles, tris...)
		}
	}
	return triangles, nil
}

func gltfPrimitiveTriangles(doc *gltf.Document, prim *gltf.Primitive, mat core.Material) ([]*scene.Triangle, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	toVec3 := func(i uint32) vmath.Vec3 {
		p := positions[i]
		return vmath.New(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	toUV := func(i uint32) vmath.UV {
		if int(i) >= len(uvs) {
			return vmath.UV{}
		}
		uv := uvs[i]
		return vmath.UV{U: float64(uv[0]), V: float64(uv[1])}
	}

	hasUV := len(uvs) > 0
	triangles := make([]*scene.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if hasUV {
			triangles = append(triangles, scene.NewTriangleUV(
				toVec3(a), toVec3(b), toVec3(c),
				toUV(a), toUV(b), toUV(c),
				mat,
			))
		} else {
			triangles = append(triangles, scene.NewTriangle(toVec3(a), toVec3(b), toVec3(c), mat))
		}
	}
	return triangles, nil
}
