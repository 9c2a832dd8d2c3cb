package kopt

import "sort"

// Index is a point quadtree keyed by Morton code: every point is sorted
// once, up front, into a fixed-depth path of quadrants derived from its
// normalized coordinate, rather than being inserted one at a time into a
// tree that subdivides on capacity. This mirrors the fixed max_tree_depth
// design used by the originating Finder, where the tree shape never changes
// across a run — only the GetPoints query walks it.
type Index struct {
	domain Domain
	depth  int // maxTreeDepth; points live at depth-1 levels below root.
	root   *quadNode
}

// quadNode is one node of the fixed-depth quadtree: an axis-aligned box and
// either four children (an interior node) or a bucket of point ids (a leaf).
type quadNode struct {
	box      Box
	children [4]*quadNode // nil until a point's path visits that quadrant
	points   []PointID    // populated only at leaves (children all nil)
}

// buildIndex constructs an Index over x/y by computing each point's Morton
// key under domain, sorting the points by key, and inserting them in that
// order along their fixed-depth quadrant paths.
//
// Complexity: O(N log N + N * maxTreeDepth).
func buildIndex(x, y []float64, domain Domain, maxTreeDepth int) (*Index, error) {
	root := &quadNode{box: domainBox(domain)}
	idx := &Index{domain: domain, depth: maxTreeDepth, root: root}

	keys := make([]mortonKey, len(x))
	ids := make([]PointID, len(x))
	for p := 0; p < len(x); p++ {
		key, err := pointMortonKey(x[p], y[p], domain, maxTreeDepth)
		if err != nil {
			return nil, err
		}
		keys[p] = key
		ids[p] = PointID(p)
	}
	sort.SliceStable(ids, func(i, j int) bool { return keys[ids[i]] < keys[ids[j]] })
	for _, p := range ids {
		path := quadrantPath(keys[p], maxTreeDepth)
		insertAlongPath(root, p, path, domain, 0)
	}
	return idx, nil
}

// domainBox returns the Box covering the entire domain at level 0.
func domainBox(d Domain) Box {
	return Box{MinX: d.xmin, MaxX: d.xmax, MinY: d.ymin, MaxY: d.ymax}
}

// childBox returns the bounding box of quadrant q (0=SW,1=NW,2=SE,3=NE,
// matching the bit order produced by interleaveCoordinates: bit1 from x,
// bit0 from y) within parent's box.
func childBox(parent Box, q int) Box {
	midX := (parent.MinX + parent.MaxX) / 2
	midY := (parent.MinY + parent.MaxY) / 2
	xHigh := q&2 != 0
	yHigh := q&1 != 0
	b := parent
	if xHigh {
		b.MinX = midX
	} else {
		b.MaxX = midX
	}
	if yHigh {
		b.MinY = midY
	} else {
		b.MaxY = midY
	}
	return b
}

// insertAlongPath descends node along path starting at path[level],
// lazily creating child nodes, and appends p to the leaf bucket once the
// path is exhausted.
func insertAlongPath(node *quadNode, p PointID, path []int, domain Domain, level int) {
	if level == len(path) {
		node.points = append(node.points, p)
		return
	}
	q := path[level]
	if node.children[q] == nil {
		node.children[q] = &quadNode{box: childBox(node.box, q)}
	}
	insertAlongPath(node.children[q], p, path, domain, level+1)
}

// GetPoints returns every point id within box, excluding center, by
// recursively pruning subtrees whose bounding box does not intersect box.
//
// Complexity: O(log N + m) for m results under a roughly uniform point
// distribution; O(N) worst case (all points in one bucket).
func (idx *Index) GetPoints(center PointID, box Box, x, y []float64) []PointID {
	var found []PointID
	collectPoints(idx.root, center, box, x, y, &found)
	return found
}

func collectPoints(node *quadNode, center PointID, box Box, x, y []float64, found *[]PointID) {
	if node == nil || !node.box.Intersects(box) {
		return
	}
	isLeaf := true
	for _, c := range node.children {
		if c != nil {
			isLeaf = false
			break
		}
	}
	if isLeaf {
		for _, p := range node.points {
			if p == center {
				continue
			}
			if box.Contains(x[p], y[p]) {
				*found = append(*found, p)
			}
		}
		return
	}
	for _, c := range node.children {
		collectPoints(c, center, box, x, y, found)
	}
}
