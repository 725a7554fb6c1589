package io

// Reader is a generic pull-based frame reader. release, when non-nil, hands the
// frame's memory back to the producer.
type Reader[T any] interface {
	Read() (data T, release func(), err error)
}

// ReaderFunc is a proxy type to make easier for users to implement Reader
type ReaderFunc[T any] func() (data T, release func(), err error)

func (f ReaderFunc[T]) Read() (T, func(), error) {
	return f()
}
