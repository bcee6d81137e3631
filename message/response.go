package message

import "httpbase/message/status"

// Response is a response message.
type Response struct {
	Message

	Status status.Status
}

// NewResponse builds a response with the canonical reason phrase for
// code, at HTTP/1.1 by default.
func NewResponse(code uint) Response {
	return Response{
		Message: Message{Version: Version11},
		Status:  status.FromCode(code),
	}
}
