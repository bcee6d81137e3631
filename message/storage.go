package message

// Key identifies a typed entry in [Storage]. Keys are compared by
// identity, so two keys created with the same name are still distinct
// entries; the name only serves diagnostics. Retrieval through a typed
// key can't produce a value of the wrong type, which is the point of
// carrying the type parameter instead of an untyped bag.
type Key[T any] struct{ name string }

func NewKey[T any](name string) *Key[T] { return &Key[T]{name: name} }

func (k *Key[T]) String() string { return k.name }

// Storage is free-form per-message state for middleware to attach context
// to a request or response as it passes through. The zero value is empty
// and usable. Like [Headers], mutation is not synchronized.
type Storage struct {
	values map[any]any
}

// StorageGet retrieves the value stored under key.
// These are package functions because methods cannot carry their own
// type parameters.
func StorageGet[T any](s *Storage, key *Key[T]) (value T, ok bool) {
	v, ok := s.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

func StorageSet[T any](s *Storage, key *Key[T], value T) {
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

func StorageDelete[T any](s *Storage, key *Key[T]) {
	delete(s.values, key)
}

func (s *Storage) Len() int { return len(s.values) }
