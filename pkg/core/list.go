package core

// List is the linear-scan accelerator. It tests every object for each ray.
type List struct {
	bbox    AABB
	objects []Obj
}

// NewList creates a list holding the given objects
func NewList(objects ...Obj) *List {
	l := &List{bbox: EmptyAABB()}
	for _, obj := range objects {
		l.Add(obj)
	}
	return l
}

// Add appends an object
func (l *List) Add(obj Obj) {
	l.objects = append(l.objects, obj)
	l.bbox = l.bbox.Union(obj.BoundingBox())
}

// Build is a no-op; a list has no structure to build
func (l *List) Build() {}

// BoundingBox returns the union of all object boxes
func (l *List) BoundingBox() AABB {
	return l.bbox
}

// Objects returns the objects in insertion order
func (l *List) Objects() []Obj {
	return l.objects
}

// Hit returns the closest hit over all objects
func (l *List) Hit(ray Ray, tMin, tMax float64) Hit {
	closest := Miss()
	closestSoFar := tMax

	for _, obj := range l.objects {
		if hit := obj.Hit(ray, tMin, closestSoFar); hit.Hits() {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest
}
