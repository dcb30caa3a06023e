package main

import (
	"fmt"

	"github.com/mgnsk/dlist"
)

func main() {
	a := dlist.New[int]()
	for _, v := range []int{5, 3, 3, 1, 4} {
		a.PushBack(v)
	}

	dlist.Sort(a)
	dlist.Unique(a)

	b := dlist.New[int]()
	b.PushBack(2)
	b.PushBack(6)

	// Moves every element of b into a. b is left empty.
	dlist.Merge(a, b)

	// Insert before the element 4.
	for it := a.Begin(); !it.Equal(a.End()); it.Next() {
		if v, _ := it.Value(); v == 4 {
			if _, err := a.Insert(it, 10); err != nil {
				panic(err)
			}
			break
		}
	}

	a.Reverse()

	fmt.Println(a.Values(), b.Len())

	if _, err := b.PopFront(); err != nil {
		fmt.Println(err)
	}
}
