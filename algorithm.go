package dlist

import (
	"cmp"
	"slices"
)

// Sort sorts the list in ascending order.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Less[T])
}

// Merge merges the sorted list other into the sorted list l. See MergeFunc.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Less[T])
}

// Unique removes consecutive equal elements. See UniqueFunc.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool {
		return a == b
	})
}

// SortFunc sorts the list in ascending order determined by less.
// less must be a strict weak ordering.
//
// With the Quick policy equal elements may be reordered.
// Elements are relinked, no values are copied.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.len <= 1 {
		return
	}

	nodes := make([]*node[T], 0, l.len)
	for n := l.root.next; n != &l.root; n = n.next {
		nodes = append(nodes, n)
	}

	switch l.opts.sort {
	case Stable:
		slices.SortStableFunc(nodes, func(a, b *node[T]) int {
			switch {
			case less(a.Value, b.Value):
				return -1
			case less(b.Value, a.Value):
				return 1
			default:
				return 0
			}
		})

	default:
		quickSort(nodes, less)
	}

	l.relink(nodes)
}

// quickSort sorts nodes with Hoare partitioning around the middle element.
// Pending ranges are kept on an explicit stack.
func quickSort[T any](nodes []*node[T], less func(a, b T) bool) {
	type span struct {
		lo, hi int
	}

	stack := []span{{0, len(nodes) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j := s.lo, s.hi
		pivot := nodes[(s.lo+s.hi)/2]

		for i <= j {
			for less(nodes[i].Value, pivot.Value) {
				i++
			}
			for less(pivot.Value, nodes[j].Value) {
				j--
			}
			if i <= j {
				nodes[i], nodes[j] = nodes[j], nodes[i]
				i++
				j--
			}
		}

		if s.lo < j {
			stack = append(stack, span{s.lo, j})
		}
		if i < s.hi {
			stack = append(stack, span{i, s.hi})
		}
	}
}

// relink rebuilds the ring in the order of nodes.
func (l *List[T]) relink(nodes []*node[T]) {
	tail := &l.root
	for _, n := range nodes {
		tail.next = n
		n.prev = tail
		tail = n
	}
	tail.next = &l.root
	l.root.prev = tail
}

// MergeFunc merges other into l. Both lists must be sorted in ascending order
// determined by less. Sortedness is not checked.
//
// Elements of other are moved into l without copying and other becomes empty.
// Of equivalent elements, those from l precede those from other, and elements
// from the same list keep their relative order. Positions at moved elements
// are no longer valid positions of other.
//
// Merging a list with itself or with a nil or empty list does nothing.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if other == nil || other == l || other.len == 0 {
		return
	}

	l.lazyInit()

	a, b := l.root.next, other.root.next
	tail := &l.root

	push := func(n *node[T]) {
		tail.next = n
		n.prev = tail
		tail = n
	}

	for a != &l.root && b != &other.root {
		if less(b.Value, a.Value) {
			next := b.next
			b.owner = l
			push(b)
			b = next
		} else {
			next := a.next
			push(a)
			a = next
		}
	}

	for a != &l.root {
		next := a.next
		push(a)
		a = next
	}

	for b != &other.root {
		next := b.next
		b.owner = l
		push(b)
		b = next
	}

	tail.next = &l.root
	l.root.prev = tail

	l.len += other.len
	other.init()
}

// Reverse reverses the order of the elements by swapping the links of every
// node, the sentinel included.
func (l *List[T]) Reverse() {
	if l.len <= 1 {
		return
	}

	n := &l.root
	for {
		n.next, n.prev = n.prev, n.next
		// The old next link is now prev.
		if n = n.prev; n == &l.root {
			return
		}
	}
}

// UniqueFunc removes every element that is equal to the element before it
// as determined by eq. Only the first element of each run of equal elements
// is kept. It returns the number of removed elements.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.len <= 1 {
		return 0
	}

	removed := 0

	for n := l.root.next; n.next != &l.root; {
		if eq(n.Value, n.next.Value) {
			l.remove(n.next)
			removed++
		} else {
			n = n.next
		}
	}

	return removed
}
