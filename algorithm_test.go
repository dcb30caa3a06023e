package dlist_test

import (
	"math/rand"
	"sort"

	"github.com/mgnsk/dlist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func fromValues[T any](values ...T) *dlist.List[T] {
	l := dlist.New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// item is ordered by key only; tag tells equivalent items apart.
type item struct {
	key int
	tag string
}

func lessItem(a, b item) bool {
	return a.key < b.key
}

func expectConsistent[T any](l *dlist.List[T]) {
	n := 0
	for it := l.Begin(); !it.Equal(l.End()); it.Next() {
		n++
	}
	Expect(n).To(Equal(l.Len()))

	n = 0
	it := l.End()
	for it.Prev() == nil {
		n++
	}
	Expect(n).To(Equal(l.Len()))
	Expect(it.Equal(l.Begin())).To(BeTrue())
}

var _ = Describe("sorting", func() {
	DescribeTable("sorts ascending",
		func(input, expected []int) {
			l := fromValues(input...)

			dlist.Sort(l)

			Expect(l.Values()).To(Equal(expected))
			expectConsistent(l)
		},
		Entry("empty", []int{}, []int{}),
		Entry("single", []int{1}, []int{1}),
		Entry("with duplicates", []int{5, 3, 3, 1, 4}, []int{1, 3, 3, 4, 5}),
		Entry("already sorted", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}),
		Entry("reversed", []int{4, 3, 2, 1}, []int{1, 2, 3, 4}),
		Entry("all equal", []int{7, 7, 7}, []int{7, 7, 7}),
	)

	When("the input is random", func() {
		Specify("the result matches a reference sort", func() {
			input := make([]int, 1000)
			for i := range input {
				input[i] = rand.Intn(100)
			}

			l := fromValues(input...)
			dlist.Sort(l)

			expected := append([]int(nil), input...)
			sort.Ints(expected)

			Expect(l.Values()).To(Equal(expected))
			expectConsistent(l)
		})
	})

	When("sorting with a custom ordering", func() {
		Specify("descending order is produced", func() {
			l := fromValues("b", "c", "a")

			l.SortFunc(func(a, b string) bool {
				return a > b
			})

			Expect(l.Values()).To(Equal([]string{"c", "b", "a"}))
		})
	})

	When("the Stable policy is configured", func() {
		Specify("equal elements keep their order", func() {
			l := dlist.New[item](dlist.WithSort(dlist.Stable))
			for i := 0; i < 100; i++ {
				l.PushBack(item{key: i % 3, tag: string(rune('a' + i%26))})
			}

			expected := l.Values()
			sort.SliceStable(expected, func(i, j int) bool {
				return expected[i].key < expected[j].key
			})

			l.SortFunc(lessItem)

			Expect(l.Values()).To(Equal(expected))
			expectConsistent(l)
		})
	})

	When("positions are held", func() {
		Specify("they follow their elements", func() {
			l := dlist.New[int]()
			l.PushBack(2)
			three := l.PushBack(3)
			l.PushBack(1)

			dlist.Sort(l)

			Expect(three.Value()).To(Equal(3))
			Expect(three.Next()).To(Succeed())
			Expect(three.Equal(l.End())).To(BeTrue())
		})
	})

	Specify("an unknown sort policy panics", func() {
		Expect(func() {
			dlist.New[int](dlist.WithSort("bogo"))
		}).To(Panic())
	})
})

var _ = Describe("merging", func() {
	Specify("equivalent elements from the receiver come first", func() {
		a := dlist.New[item]()
		a.PushBack(item{1, "a"})
		a.PushBack(item{3, "a1"})
		a.PushBack(item{3, "a2"})
		a.PushBack(item{5, "a"})

		b := dlist.New[item]()
		b.PushBack(item{2, "b"})
		b.PushBack(item{3, "b"})
		b.PushBack(item{4, "b"})

		a.MergeFunc(b, lessItem)

		Expect(a.Values()).To(Equal([]item{
			{1, "a"},
			{2, "b"},
			{3, "a1"},
			{3, "a2"},
			{3, "b"},
			{4, "b"},
			{5, "a"},
		}))
		Expect(a.Len()).To(Equal(7))
		Expect(b.Len()).To(Equal(0))
		Expect(b.Empty()).To(BeTrue())

		expectConsistent(a)
		expectConsistent(b)
	})

	Specify("ordered values merge", func() {
		a := fromValues(1, 3, 3, 5)
		b := fromValues(2, 3, 4)

		dlist.Merge(a, b)

		Expect(a.Values()).To(Equal([]int{1, 2, 3, 3, 3, 4, 5}))
		Expect(b.Len()).To(BeZero())
	})

	When("the receiver is empty", func() {
		Specify("it takes all elements", func() {
			a := dlist.New[int]()
			b := fromValues(1, 2)

			dlist.Merge(a, b)

			Expect(a.Values()).To(Equal([]int{1, 2}))
			Expect(b.Len()).To(BeZero())
			expectConsistent(a)
		})
	})

	When("the receiver is a zero value", func() {
		Specify("it takes all elements", func() {
			var a dlist.List[int]
			b := fromValues(1, 2)

			dlist.Merge(&a, b)

			Expect(a.Values()).To(Equal([]int{1, 2}))
			expectConsistent(&a)
		})
	})

	When("the other list is empty", func() {
		Specify("nothing changes", func() {
			a := fromValues(1, 2)

			dlist.Merge(a, dlist.New[int]())
			dlist.Merge(a, nil)

			Expect(a.Values()).To(Equal([]int{1, 2}))
		})
	})

	When("merging a list with itself", func() {
		Specify("nothing changes", func() {
			a := fromValues(1, 2)

			dlist.Merge(a, a)

			Expect(a.Values()).To(Equal([]int{1, 2}))
			Expect(a.Len()).To(Equal(2))
		})
	})

	When("the other list is reused", func() {
		Specify("it works as an empty list", func() {
			a := fromValues(1)
			b := fromValues(2)

			dlist.Merge(a, b)
			b.PushBack(3)

			Expect(b.Values()).To(Equal([]int{3}))
			Expect(a.Values()).To(Equal([]int{1, 2}))
			expectConsistent(b)
		})
	})
})

var _ = Describe("reversing", func() {
	DescribeTable("reverses the order",
		func(input, expected []int) {
			l := fromValues(input...)

			l.Reverse()

			Expect(l.Values()).To(Equal(expected))
			expectConsistent(l)
		},
		Entry("empty", []int{}, []int{}),
		Entry("single", []int{1}, []int{1}),
		Entry("two", []int{1, 2}, []int{2, 1}),
		Entry("three", []int{1, 2, 3}, []int{3, 2, 1}),
	)

	Specify("reversing twice restores the order", func() {
		l := fromValues(1, 2, 3, 4, 5)

		l.Reverse()
		l.Reverse()

		Expect(l.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
		expectConsistent(l)
	})

	Specify("front and back are swapped", func() {
		l := fromValues(1, 2, 3)

		l.Reverse()

		Expect(l.Front()).To(Equal(3))
		Expect(l.Back()).To(Equal(1))

		l.PushBack(0)
		l.PushFront(4)
		Expect(l.Values()).To(Equal([]int{4, 3, 2, 1, 0}))
	})
})

var _ = Describe("removing consecutive duplicates", func() {
	DescribeTable("keeps the first of each run",
		func(input, expected []int) {
			l := fromValues(input...)

			removed := dlist.Unique(l)

			Expect(l.Values()).To(Equal(expected))
			Expect(removed).To(Equal(len(input) - len(expected)))
			expectConsistent(l)
		},
		Entry("empty", []int{}, []int{}),
		Entry("single", []int{1}, []int{1}),
		Entry("non-adjacent duplicates survive", []int{1, 1, 2, 1, 3, 3}, []int{1, 2, 1, 3}),
		Entry("all equal", []int{2, 2, 2, 2}, []int{2}),
		Entry("no duplicates", []int{1, 2, 3}, []int{1, 2, 3}),
	)

	Specify("a custom equality is used", func() {
		l := fromValues(item{1, "a"}, item{1, "b"}, item{2, "c"})

		removed := l.UniqueFunc(func(a, b item) bool {
			return a.key == b.key
		})

		Expect(removed).To(Equal(1))
		Expect(l.Values()).To(Equal([]item{{1, "a"}, {2, "c"}}))
	})
})
