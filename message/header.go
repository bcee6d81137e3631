package message

import "strings"

// Field is a header field name. It keeps the spelling it was created with:
// rendering always uses the original bytes, while comparison folds ASCII
// letters only, so "Content-Type", "content-type" and "CONTENT-TYPE" are
// the same field. Folding is byte-wise and locale-free on purpose; bytes
// outside A-Z/a-z compare verbatim.
type Field struct{ name string }

// NewField stores name verbatim. It never normalizes case.
func NewField(name string) Field { return Field{name: name} }

// String returns the original spelling.
func (f Field) String() string { return f.name }

// Fold returns the ASCII-lowercased form, consistent with [Field.Equal].
// Use it when a field serves as a map key.
func (f Field) Fold() string {
	for i := 0; i < len(f.name); i++ {
		if c := f.name[i]; 'A' <= c && c <= 'Z' {
			// Only copy once we know folding changes something.
			b := []byte(f.name)
			for ; i < len(b); i++ {
				b[i] = foldByte(b[i])
			}
			return string(b)
		}
	}
	return f.name
}

func (f Field) Equal(o Field) bool {
	if len(f.name) != len(o.name) {
		return false
	}
	for i := 0; i < len(f.name); i++ {
		if foldByte(f.name[i]) != foldByte(o.name[i]) {
			return false
		}
	}
	return true
}

func foldByte(c byte) byte {
	const capitalDiff = 'a' - 'A'
	if 'A' <= c && c <= 'Z' {
		c += capitalDiff
	}
	return c
}

// FieldValue is one header entry.
type FieldValue struct {
	Field Field
	Value string
}

// Headers is a positional header collection: an ordered sequence of
// (field, value) entries. Iteration and multi-valued lookup follow
// insertion order, which matters for fields like repeated Set-Cookie.
//
// The zero value is an empty, usable collection. Headers is not safe for
// concurrent mutation; callers sharing one across goroutines bring their
// own synchronization.
type Headers struct {
	entries []FieldValue
}

// HeadersOf builds headers from alternating name-value pairs:
//
//	HeadersOf("Host", "example.com", "Accept", "*/*")
//
// It panics on an odd number of arguments.
func HeadersOf(nameValues ...string) Headers {
	if len(nameValues)%2 != 0 {
		panic("message: HeadersOf requires alternating name-value pairs")
	}

	h := Headers{entries: make([]FieldValue, 0, len(nameValues)/2)}
	for i := 0; i < len(nameValues); i += 2 {
		h.Add(nameValues[i], nameValues[i+1])
	}
	return h
}

func (h *Headers) Len() int { return len(h.entries) }

// Values returns every value whose field compares equal to key, in
// insertion order. A field unknown to h yields an empty result, not an
// error.
func (h *Headers) Values(key string) []string {
	q := NewField(key)

	var values []string
	for _, e := range h.entries {
		if e.Field.Equal(q) {
			values = append(values, e.Value)
		}
	}
	return values
}

// Get assumes the field is a singleton field and returns its first value.
// For list-based fields, use [Headers.Values].
func (h *Headers) Get(key string) (value string, ok bool) {
	q := NewField(key)
	for _, e := range h.entries {
		if e.Field.Equal(q) {
			return e.Value, true
		}
	}
	return "", false
}

// Has reports whether any entry's field compares equal to key.
func (h *Headers) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Add appends one entry without disturbing existing ones.
func (h *Headers) Add(key, value string) {
	h.entries = append(h.entries, FieldValue{Field: NewField(key), Value: value})
}

// Set removes every entry whose field compares equal to key, then appends
// the given values at the end, spelled the way key is spelled here. Other
// fields and their relative order are untouched. Calling Set with no
// values is equivalent to [Headers.Del].
func (h *Headers) Set(key string, values ...string) {
	h.Del(key)

	f := NewField(key)
	for _, v := range values {
		h.entries = append(h.entries, FieldValue{Field: f, Value: v})
	}
}

// Del removes every entry whose field compares equal to key.
func (h *Headers) Del(key string) {
	q := NewField(key)

	kept := h.entries[:0]
	for _, e := range h.entries {
		if !e.Field.Equal(q) {
			kept = append(kept, e)
		}
	}
	h.entries = kept
}

// Entries returns a copy of the underlying sequence in insertion order.
func (h *Headers) Entries() []FieldValue {
	clone := make([]FieldValue, len(h.entries))
	copy(clone, h.entries)
	return clone
}

// Fields returns the distinct fields in first-insertion order, each with
// its original spelling from the first occurrence.
func (h *Headers) Fields() []Field {
	seen := make(map[string]struct{}, len(h.entries))
	fields := make([]Field, 0, len(h.entries))
	for _, e := range h.entries {
		k := e.Field.Fold()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		fields = append(fields, e.Field)
	}
	return fields
}

// Equal is strict pairwise equality: same length, and entry i of both
// collections carries equal fields (case-folded) and byte-identical
// values. Two collections holding the same fields in different insertion
// order compare unequal. See the package documentation for why this is
// deliberate.
func (h *Headers) Equal(o *Headers) bool {
	if len(h.entries) != len(o.entries) {
		return false
	}
	for i, e := range h.entries {
		oe := o.entries[i]
		if !e.Field.Equal(oe.Field) || e.Value != oe.Value {
			return false
		}
	}
	return true
}

func (h *Headers) Clone() Headers {
	return Headers{entries: h.Entries()}
}

// String renders entries as "Name: value" lines for debugging, using each
// field's original spelling.
func (h *Headers) String() string {
	var sb strings.Builder
	for _, e := range h.entries {
		sb.WriteString(e.Field.String())
		sb.WriteString(": ")
		sb.WriteString(e.Value)
		sb.WriteString("\n")
	}
	return sb.String()
}
