package cell

// Ref is a shared view of a value held by a RefCell. It must be released with
// Release once the caller is done with it. Using a released Ref panics.
type Ref[T any] struct {
	ptr     *T
	release func()
}

// Get returns a copy of the borrowed value.
func (r *Ref[T]) Get() T {
	return *r.value("get")
}

// Value returns a pointer to the borrowed value. The pointer is only valid
// until Release and must not be written through.
func (r *Ref[T]) Value() *T {
	return r.value("value")
}

func (r *Ref[T]) Release() {
	r.value("release")
	r.release()
	r.ptr, r.release = nil, nil
}

func (r *Ref[T]) value(op string) *T {
	if r.release == nil {
		panic(&BorrowError{Op: op, Err: ErrNotBorrowed})
	}
	return r.ptr
}

// RefMut is an exclusive view of a value held by a RefCell.
type RefMut[T any] struct {
	ptr     *T
	release func()
}

func (r *RefMut[T]) Get() T {
	return *r.value("get")
}

func (r *RefMut[T]) Set(value T) {
	*r.value("set") = value
}

// Value returns a pointer to the borrowed value, valid until Release.
func (r *RefMut[T]) Value() *T {
	return r.value("value")
}

func (r *RefMut[T]) Release() {
	r.value("release")
	r.release()
	r.ptr, r.release = nil, nil
}

func (r *RefMut[T]) value(op string) *T {
	if r.release == nil {
		panic(&BorrowError{Op: op, Err: ErrNotBorrowed})
	}
	return r.ptr
}

// MapRef narrows a Ref to a part of the borrowed value. The original guard is
// handed over to the result and must not be used again.
func MapRef[T, U any](r *Ref[T], fn func(*T) *U) *Ref[U] {
	ptr := r.value("map")
	mapped := &Ref[U]{ptr: fn(ptr), release: r.release}
	r.ptr, r.release = nil, nil
	return mapped
}

// MapRefMut narrows a RefMut to a part of the borrowed value.
func MapRefMut[T, U any](r *RefMut[T], fn func(*T) *U) *RefMut[U] {
	ptr := r.value("map")
	mapped := &RefMut[U]{ptr: fn(ptr), release: r.release}
	r.ptr, r.release = nil, nil
	return mapped
}
