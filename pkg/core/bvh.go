package core

// BVHThreshold is the largest object count a node keeps as a leaf
const BVHThreshold = 4

// BVH is a node of a Bounding Volume Hierarchy. Objects are collected with Add and
// partitioned by Build; after Build a node is either a leaf holding objects or an
// internal node owning exactly two children.
type BVH struct {
	bbox    AABB
	objects []Obj
	left    *BVH
	right   *BVH
}

// NewBVH creates an unbuilt BVH holding the given objects
func NewBVH(objects ...Obj) *BVH {
	bvh := &BVH{bbox: EmptyAABB()}
	for _, obj := range objects {
		bvh.Add(obj)
	}
	return bvh
}

// Add appends an object to the node and grows its bounding box
func (b *BVH) Add(obj Obj) {
	b.objects = append(b.objects, obj)
	b.bbox = b.bbox.Union(obj.BoundingBox())
}

// BoundingBox returns the aggregate bounding box of everything beneath this node
func (b *BVH) BoundingBox() AABB {
	return b.bbox
}

// Objects returns the objects held directly by this node (nil for internal nodes)
func (b *BVH) Objects() []Obj {
	return b.objects
}

// Children returns the two children of an internal node, or nils for a leaf
func (b *BVH) Children() (*BVH, *BVH) {
	return b.left, b.right
}

// IsLeaf reports whether the node has no children
func (b *BVH) IsLeaf() bool {
	return b.left == nil && b.right == nil
}

// Build recursively partitions the node's objects until every leaf holds at most
// BVHThreshold objects or cannot be separated further.
func (b *BVH) Build() {
	if len(b.objects) <= BVHThreshold {
		return
	}

	maxOfMin := b.maxOfMinPoints()
	axis := b.bbox.LongestAxis()

	// Coincident minimums on the longest axis put everything on one side; try the others
	// before giving up and keeping an oversized leaf.
	var left, right *BVH
	for i := 0; i < 3 && left == nil; i++ {
		left, right = b.split((axis+i)%3, maxOfMin)
	}
	if left == nil {
		return
	}

	left.Build()
	right.Build()

	b.left = left
	b.right = right
	b.objects = nil
	b.bbox = left.bbox.Union(right.bbox)
}

// maxOfMinPoints returns the per-axis maximum of the objects' minimum corners
func (b *BVH) maxOfMinPoints() Vec3 {
	maxOfMin := b.objects[0].BoundingBox().Min
	for _, obj := range b.objects[1:] {
		maxOfMin = maxOfMin.Max(obj.BoundingBox().Min)
	}
	return maxOfMin
}

// split partitions the objects at the midpoint between the node minimum and maxOfMin
// along axis. Objects whose minimum lies exactly on the split go to the lower child.
// It returns nils when one side would be empty.
func (b *BVH) split(axis int, maxOfMin Vec3) (*BVH, *BVH) {
	splitPos := (b.bbox.Min.Axis(axis) + maxOfMin.Axis(axis)) * 0.5

	left := NewBVH()
	right := NewBVH()
	for _, obj := range b.objects {
		if obj.BoundingBox().Min.Axis(axis) <= splitPos {
			left.Add(obj)
		} else {
			right.Add(obj)
		}
	}

	if len(left.objects) == 0 || len(right.objects) == 0 {
		return nil, nil
	}
	return left, right
}

// Hit returns the closest hit beneath this node within [tMin, tMax]
func (b *BVH) Hit(ray Ray, tMin, tMax float64) Hit {
	if !b.bbox.Hit(ray, tMin, tMax) {
		return Miss()
	}

	closest := Miss()
	for _, obj := range b.objects {
		if hit := obj.Hit(ray, tMin, tMax); hit.Hits() {
			closest = hit
			tMax = hit.T
		}
	}

	for _, child := range [2]*BVH{b.left, b.right} {
		if child == nil {
			continue
		}
		if hit := child.Hit(ray, tMin, tMax); hit.Hits() {
			closest = hit
			tMax = hit.T
		}
	}

	return closest
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	AvgDepth     float64 // Average leaf depth
	TotalObjects int
	MaxLeafSize  int
}

// Stats returns statistics about the tree rooted at this node
func (b *BVH) Stats() BVHStats {
	stats := BVHStats{}
	b.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (b *BVH) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	stats.TotalObjects += len(b.objects)

	if b.IsLeaf() {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		if len(b.objects) > stats.MaxLeafSize {
			stats.MaxLeafSize = len(b.objects)
		}
		return
	}

	if b.left != nil {
		b.left.collectStats(depth+1, stats)
	}
	if b.right != nil {
		b.right.collectStats(depth+1, stats)
	}
}
