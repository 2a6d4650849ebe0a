package soa

// View is the read-only surface shared by every generated container
// and slice type. T is the record type, Ref its borrowed proxy.
type View[T, Ref any] interface {
	Len() int
	IsEmpty() bool
	Get(i int) (Ref, bool)
	Index(i int) Ref
	First() (Ref, bool)
	Last() (Ref, bool)
}

// MutView extends View with in-place mutation of existing elements.
// Operations that change the length are reserved for Container.
type MutView[T, Ref, RefMut any] interface {
	View[T, Ref]

	GetMut(i int) (RefMut, bool)
	IndexMut(i int) RefMut
	FirstMut() (RefMut, bool)
	LastMut() (RefMut, bool)
	Swap(i, j int)
	Apply(perm []int) error
	SortBy(cmp func(a, b Ref) int)
}

// Container is the owning, resizable struct-of-arrays surface.
// Operations exchanging whole containers (Append, SplitOff) and the
// concrete slice/iterator constructors stay on the generated types,
// where their self-referential signatures are expressible.
type Container[T, Ref, RefMut any] interface {
	MutView[T, Ref, RefMut]

	Push(value T)
	Pop() (T, bool)
	Insert(i int, value T) error
	Remove(i int) (T, error)
	SwapRemove(i int) (T, error)
	Replace(i int, value T) (T, error)
	Truncate(n int)
	Clear()
	Cap() int
	Reserve(additional int)
	ReserveExact(additional int)
	ShrinkToFit()
}
