package scene

import (
	"sort"

	"pathtracer/core"
	"pathtracer/sampling"
	"pathtracer/vmath"
)

// BVHNode is a binary bounding-volume hierarchy node, grounded on
// original_source's bvh_node.cpp: top-down sort-and-split build keyed on
// the combined box's longest axis, with leaf conventions for slices of
// size 1 (left == right, same primitive) and 2 (comparator-ordered).
type BVHNode struct {
	Left, Right core.Primitive
	Box         core.AABB
}

// BuildBVH builds a tree over primitives, which must already have finite
// bounding boxes; the caller is expected to have filtered those out (or to
// treat a false `ok` as a core.GeometryError at build time, per spec.md §7).
func BuildBVH(primitives []core.Primitive) (*BVHNode, error) {
	objects := make([]core.Primitive, len(primitives))
	copy(objects, primitives)
	return buildBVHRange(objects, 0, len(objects))
}

func buildBVHRange(objects []core.Primitive, start, end int) (*BVHNode, error) {
	combined := core.EmptyAABB
	for i := start; i < end; i++ {
		box, ok := objects[i].BoundingBox()
		if !ok {
			return nil, &core.GeometryError{Index: i, Name: "bvh build"}
		}
		combined = core.Surrounding(combined, box)
	}

	axis := combined.LongestAxis()
	node := &BVHNode{}
	span := end - start

	switch {
	case span == 1:
		node.Left = objects[start]
		node.Right = objects[start]
	case span == 2:
		boxA, _ := objects[start].BoundingBox()
		boxB, _ := objects[start+1].BoundingBox()
		if boxA.Min.Component(axis) < boxB.Min.Component(axis) {
			node.Left = objects[start]
			node.Right = objects[start+1]
		} else {
			node.Left = objects[start+1]
			node.Right = objects[start]
		}
	default:
		slice := objects[start:end]
		sort.SliceStable(slice, func(i, j int) bool {
			boxI, _ := slice[i].BoundingBox()
			boxJ, _ := slice[j].BoundingBox()
			return boxI.Min.Component(axis) < boxJ.Min.Component(axis)
		})

		mid := start + span/2
		left, err := buildBVHRange(objects, start, mid)
		if err != nil {
			return nil, err
		}
		right, err := buildBVHRange(objects, mid, end)
		if err != nil {
			return nil, err
		}
		node.Left = left
		node.Right = right
	}

	leftBox, _ := node.Left.BoundingBox()
	rightBox, _ := node.Right.BoundingBox()
	node.Box = core.Surrounding(leftBox, rightBox)
	return node, nil
}

func (n *BVHNode) Hit(r vmath.Ray, tMin, tMax float64, rng *sampling.RNG) (core.HitRecord, bool) {
	if !n.Box.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax, rng)
	rightLimit := tMax
	if hitLeft {
		rightLimit = leftRec.T
	}
	rightRec, hitRight := n.Right.Hit(r, tMin, rightLimit, rng)

	if hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}

// Stats reports tree shape: node count, leaf count and max depth. Handle
// equality (not dynamic type) is used to dedup left/right when both point
// at the same primitive, fixing the double-count bug in original_source's
// countNodes (spec.md §9 open question (c)).
type Stats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
}

func (n *BVHNode) Stats() Stats {
	s := Stats{}
	countBVHNodes(n, 0, &s)
	return s
}

func countBVHNodes(n *BVHNode, depth int, s *Stats) {
	s.Nodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}

	leftNode, leftIsNode := n.Left.(*BVHNode)
	rightNode, rightIsNode := n.Right.(*BVHNode)

	if !leftIsNode && !rightIsNode {
		if n.Left == n.Right {
			s.Leaves++
		} else {
			s.Leaves += 2
		}
		return
	}

	if leftIsNode {
		countBVHNodes(leftNode, depth+1, s)
	} else {
		s.Leaves++
	}

	if rightIsNode {
		if rightNode != leftNode {
			countBVHNodes(rightNode, depth+1, s)
		}
	} else if n.Right != n.Left {
		s.Leaves++
	}
}
