package dlist

// Position is implemented by Iterator and ConstIterator.
// Positions of either kind compare equal when they refer to the same
// element of the same list.
type Position[T any] interface {
	pos() position[T]
}

type position[T any] struct {
	list *List[T]
	node *node[T]
}

func (p position[T]) pos() position[T] {
	return p
}

// valid reports whether the target node is still in the ring of p.list.
// The sentinel is owned by its list for the lifetime of the list.
func (p position[T]) valid() bool {
	return p.list != nil && p.node != nil && p.node.owner == p.list
}

func (p position[T]) isEnd() bool {
	return p.node == &p.list.root
}

func (p *position[T]) next() error {
	if !p.valid() || p.isEnd() {
		return ErrInvalidPosition
	}
	p.node = p.node.next
	return nil
}

func (p *position[T]) prev() error {
	if !p.valid() || p.node.prev == &p.list.root {
		return ErrInvalidPosition
	}
	p.node = p.node.prev
	return nil
}

func (p position[T]) ptr() (*T, error) {
	if !p.valid() || p.isEnd() {
		return nil, ErrInvalidPosition
	}
	return &p.node.Value, nil
}

func (p position[T]) value() (T, error) {
	v, err := p.ptr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *v, nil
}

// Iterator is a position in a list that allows modifying the element.
//
// The zero value is an invalid position.
type Iterator[T any] struct {
	position[T]
}

// Valid reports whether the iterator refers to an element or the end of its list.
func (it Iterator[T]) Valid() bool {
	return it.valid()
}

// Next moves the iterator to the next element.
// It fails at End().
func (it *Iterator[T]) Next() error {
	return it.next()
}

// Prev moves the iterator to the previous element.
// It fails at Begin().
func (it *Iterator[T]) Prev() error {
	return it.prev()
}

// Value returns the element at the iterator.
func (it Iterator[T]) Value() (T, error) {
	return it.value()
}

// Ptr returns a pointer to the element at the iterator.
// The pointer must not be used after the element is removed.
func (it Iterator[T]) Ptr() (*T, error) {
	return it.ptr()
}

// Set replaces the element at the iterator.
func (it Iterator[T]) Set(value T) error {
	v, err := it.ptr()
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// Equal reports whether both positions refer to the same element of the same list.
func (it Iterator[T]) Equal(p Position[T]) bool {
	return p != nil && it.position == p.pos()
}

// Const returns a read-only copy of the iterator.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.position}
}

// ConstIterator is a read-only position in a list.
//
// The zero value is an invalid position.
type ConstIterator[T any] struct {
	position[T]
}

// Valid reports whether the iterator refers to an element or the end of its list.
func (it ConstIterator[T]) Valid() bool {
	return it.valid()
}

// Next moves the iterator to the next element.
func (it *ConstIterator[T]) Next() error {
	return it.next()
}

// Prev moves the iterator to the previous element.
func (it *ConstIterator[T]) Prev() error {
	return it.prev()
}

// Value returns the element at the iterator.
func (it ConstIterator[T]) Value() (T, error) {
	return it.value()
}

// Equal reports whether both positions refer to the same element of the same list.
func (it ConstIterator[T]) Equal(p Position[T]) bool {
	return p != nil && it.position == p.pos()
}
