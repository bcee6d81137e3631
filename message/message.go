// Package message is the shared HTTP data-model vocabulary: versions,
// methods, header fields, requests, responses and bodies. It contains no
// parser, serializer or transport; those collaborate with this package
// through the capability contracts in httpbase/stream.
//
// Header equality is strict: two [Headers] holding the same fields and
// values in different insertion order compare unequal. Insertion order is
// observable (iteration, repeated fields), so it is part of the value.
// Callers wanting semantic equality can compare per-field value sets
// themselves via [Headers.Fields] and [Headers.Values].
package message

// Message holds the parts a request and a response have in common.
type Message struct {
	Version Version
	Headers Headers

	// Storage carries middleware-attached context; see [Key].
	Storage Storage

	// Body may be zero when the constructing layer has not attached one.
	Body Body
}
