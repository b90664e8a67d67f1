package roster

// IDAllocator hands out elevator ids that do not collide with ids reserved so far.
type IDAllocator struct {
	next int
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Reserve marks id as taken. Later calls to Next return larger ids.
func (a *IDAllocator) Reserve(id int) {
	if id >= a.next {
		a.next = id + 1
	}
}

func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}
