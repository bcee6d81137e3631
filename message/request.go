package message

// Request is a request message. Target is the raw request target as it
// would appear on the request line; interpreting it (origin form,
// absolute form, ...) is a parser concern, not this package's.
type Request struct {
	Message

	Method Method
	Target string
}

// NewRequest builds a request with canonicalized method and the given
// target, at HTTP/1.1 by default.
func NewRequest(method, target string) Request {
	return Request{
		Message: Message{Version: Version11},
		Method:  MethodOf(method),
		Target:  target,
	}
}
