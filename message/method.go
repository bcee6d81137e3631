package message

// Method is an open-ended request method. The canonical form is uppercase;
// build custom methods with [MethodOf] so that comparison against the
// constants below behaves. Any string is accepted, validation belongs to
// the caller.
type Method string

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9.1
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

// MethodOf canonicalizes raw into a [Method], uppercasing ASCII letters.
// Bytes outside a-z pass through untouched.
func MethodOf(raw string) Method {
	const capitalDiff = 'a' - 'A'
	b := []byte(raw)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - capitalDiff
		}
	}
	return Method(b)
}

func (m Method) String() string { return string(m) }

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9.2.1-3
func DefaultSafeMethods() []Method {
	return []Method{
		MethodGet, MethodHead, MethodOptions, MethodTrace,
	}
}
