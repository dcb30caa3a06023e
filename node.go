package dlist

// node is a ring cell.
// A node belongs to at most one ring. owner is nil once it is unlinked.
type node[T any] struct {
	next, prev *node[T]
	owner      *List[T]
	Value      T
}

// linkBefore inserts this node before mark.
func (n *node[T]) linkBefore(mark *node[T]) {
	p := mark.prev
	n.prev = p
	n.next = mark
	p.next = n
	mark.prev = n
}

// unlink unlinks this node and detaches it from its owner.
func (n *node[T]) unlink() {
	if n.owner == nil || n.next == nil {
		panic("dlist: invalid element")
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.owner = nil
}

// release clears the value of an unlinked node.
func (n *node[T]) release() {
	var zero T
	n.Value = zero
}
