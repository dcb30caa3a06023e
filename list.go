/*
Package dlist implements a generic doubly linked list with checked positions,
in-place sort, merge, reverse and consecutive duplicate removal.
*/
package dlist

// List is a circular doubly linked list anchored by a sentinel node.
//
// The zero value is a ready to use empty list.
// A List must not be copied after first use. Use Clone or Assign instead.
type List[T any] struct {
	root node[T]
	len  int
	opts listOptions
}

// New creates an empty list.
func New[T any](opts ...Option) *List[T] {
	l := &List[T]{
		opts: newDefaultListOptions(),
	}

	for _, opt := range opts {
		opt.apply(&l.opts)
	}

	return l.init()
}

func (l *List[T]) init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.root.owner = l
	l.len = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Front returns the first element of the list.
func (l *List[T]) Front() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.root.next.Value, nil
}

// Back returns the last element of the list.
func (l *List[T]) Back() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.root.prev.Value, nil
}

// Begin returns a position at the first element, or End() if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return l.iter(l.root.next)
}

// End returns the past-the-end position.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return l.iter(&l.root)
}

// CBegin returns a read-only position at the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd returns the read-only past-the-end position.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// Insert inserts a value before pos and returns a position at the new element.
// If pos is End(), the value is appended.
func (l *List[T]) Insert(pos Iterator[T], value T) (Iterator[T], error) {
	if !l.owns(pos.position) {
		return Iterator[T]{}, ErrInvalidPosition
	}

	n := l.insert(&node[T]{Value: value}, pos.node)

	return l.iter(n), nil
}

// Erase removes the element at pos and returns a position at the element
// that followed it. Erasing the last element returns End().
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if l.len == 0 {
		return Iterator[T]{}, ErrEmptyContainer
	}

	if !l.owns(pos.position) || pos.node == &l.root {
		return Iterator[T]{}, ErrInvalidPosition
	}

	next := pos.node.next
	l.remove(pos.node)

	return l.iter(next), nil
}

// PushBack inserts a value at the back of the list and returns its position.
func (l *List[T]) PushBack(value T) Iterator[T] {
	l.lazyInit()
	return l.iter(l.insert(&node[T]{Value: value}, &l.root))
}

// PushFront inserts a value at the front of the list and returns its position.
func (l *List[T]) PushFront(value T) Iterator[T] {
	l.lazyInit()
	return l.iter(l.insert(&node[T]{Value: value}, l.root.next))
}

// PopBack removes the last element and returns its value.
func (l *List[T]) PopBack() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	n := l.root.prev
	value := n.Value
	l.remove(n)

	return value, nil
}

// PopFront removes the first element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	n := l.root.next
	value := n.Value
	l.remove(n)

	return value, nil
}

// Clear removes all elements. Positions at removed elements become invalid.
func (l *List[T]) Clear() {
	l.lazyInit()

	for n := l.root.next; n != &l.root; {
		next := n.next
		n.next = nil
		n.prev = nil
		n.owner = nil
		n.release()
		n = next
	}

	l.init()
}

// Clone returns an independent copy of the list with the same options.
// Element values are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		opts: l.opts,
	}
	c.init()

	l.Do(func(value T) bool {
		c.PushBack(value)
		return true
	})

	return c
}

// Assign replaces the contents of l with a copy of the elements of other.
// Assigning a list to itself does nothing. A nil other clears l.
func (l *List[T]) Assign(other *List[T]) {
	if other == l {
		return
	}

	l.Clear()

	if other == nil {
		return
	}

	other.Do(func(value T) bool {
		l.PushBack(value)
		return true
	})
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T]) Do(f func(value T) bool) {
	if l.len == 0 {
		return
	}

	for n := l.root.next; n != &l.root; n = n.next {
		if !f(n.Value) {
			return
		}
	}
}

// DoReverse calls function f on each element of the list, in backward order.
// If f returns false, DoReverse stops the iteration.
// f must not change l.
func (l *List[T]) DoReverse(f func(value T) bool) {
	if l.len == 0 {
		return
	}

	for n := l.root.prev; n != &l.root; n = n.prev {
		if !f(n.Value) {
			return
		}
	}
}

// Values returns the elements of the list in forward order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.len)

	l.Do(func(value T) bool {
		values = append(values, value)
		return true
	})

	return values
}

// insert links n before mark and takes ownership of it.
func (l *List[T]) insert(n, mark *node[T]) *node[T] {
	n.owner = l
	n.linkBefore(mark)
	l.len++
	return n
}

// remove unlinks n from the list and releases its value.
func (l *List[T]) remove(n *node[T]) {
	n.unlink()
	n.release()
	l.len--
}

// owns reports whether p is a valid position in this list.
func (l *List[T]) owns(p position[T]) bool {
	return p.list == l && p.valid()
}

func (l *List[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{position[T]{list: l, node: n}}
}
