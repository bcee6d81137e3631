// Package status models response status codes as an open set: the
// constants below cover the registered codes, and any other code is
// representable by constructing a [Status] directly. The reason phrase is
// advisory (RFC 9110 treats it as such), so it takes no part in equality.
package status

// Status pairs a numeric code with its reason phrase. Codes convention-
// ally fall in 100-599, but that is not enforced.
type Status struct {
	Code         uint
	ReasonPhrase string
}

// CustomReasonPhrase is the phrase given to codes outside the registered
// table by [FromCode].
const CustomReasonPhrase = "CUSTOM"

// New pairs a code with a caller-supplied phrase, kept verbatim.
// Use [FromCode] to get the registered phrase instead.
func New(code uint, reasonPhrase string) Status {
	return Status{Code: code, ReasonPhrase: reasonPhrase}
}

// FromCode returns the registered status for code, or one with
// [CustomReasonPhrase] when the code is not in the table.
func FromCode(code uint) Status {
	if s, ok := table[code]; ok {
		return *s
	}
	return Status{Code: code, ReasonPhrase: CustomReasonPhrase}
}

// Equal compares by code only; phrases are ignored.
func (s Status) Equal(o Status) bool { return s.Code == o.Code }

// The class predicates are half-open range checks, not table lookups,
// so they hold for unregistered codes too. Exactly one of them is true
// for any code in 100-599; all are false from 600 up.

func (s Status) IsInformational() bool { return 100 <= s.Code && s.Code < 200 }
func (s Status) IsSuccessful() bool    { return 200 <= s.Code && s.Code < 300 }
func (s Status) IsRedirection() bool   { return 300 <= s.Code && s.Code < 400 }
func (s Status) IsClientError() bool   { return 400 <= s.Code && s.Code < 500 }
func (s Status) IsServerError() bool   { return 500 <= s.Code && s.Code < 600 }

// IsError covers both error classes.
func (s Status) IsError() bool { return 400 <= s.Code && s.Code < 600 }

// Informational 1XX
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-informational-1xx
var (
	Continue           = add(Status{100, "Continue"})
	SwitchingProtocols = add(Status{101, "Switching Protocols"})
	Processing         = add(Status{102, "Processing"})
)

// Successful 2XX
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-successful-2xx
var (
	OK                   = add(Status{200, "OK"})
	Created              = add(Status{201, "Created"})
	Accepted             = add(Status{202, "Accepted"})
	NonAuthoritativeInfo = add(Status{203, "Non Authoritative Information"})
	NoContent            = add(Status{204, "No Content"})
	ResetContent         = add(Status{205, "Reset Content"})
	PartialContent       = add(Status{206, "Partial Content"})
)

// Redirection 3xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-redirection-3xx
var (
	MultipleChoices   = add(Status{300, "Multiple Choices"})
	MovedPermanently  = add(Status{301, "Moved Permanently"})
	Found             = add(Status{302, "Found"})
	SeeOther          = add(Status{303, "See Other"})
	NotModified       = add(Status{304, "Not Modified"})
	UseProxy          = add(Status{305, "Use Proxy"})
	SwitchProxy       = add(Status{306, "Switch Proxy"})
	TemporaryRedirect = add(Status{307, "Temporary Redirect"})
	PermanentRedirect = add(Status{308, "Permanent Redirect"})
)

// Client Error 4xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-client-error-4xx
var (
	BadRequest                   = add(Status{400, "Bad Request"})
	Unauthorized                 = add(Status{401, "Unauthorized"})
	PaymentRequired              = add(Status{402, "Payment Required"})
	Forbidden                    = add(Status{403, "Forbidden"})
	NotFound                     = add(Status{404, "Not Found"})
	MethodNotAllowed             = add(Status{405, "Method Not Allowed"})
	NotAcceptable                = add(Status{406, "Not Acceptable"})
	ProxyAuthRequired            = add(Status{407, "Proxy Authentication Required"})
	RequestTimeout               = add(Status{408, "Request Timeout"})
	Conflict                     = add(Status{409, "Conflict"})
	Gone                         = add(Status{410, "Gone"})
	LengthRequired               = add(Status{411, "Length Required"})
	PreconditionFailed           = add(Status{412, "Precondition Failed"})
	RequestEntityTooLarge        = add(Status{413, "Request Entity Too Large"})
	RequestURITooLong            = add(Status{414, "Request URI Too Long"})
	UnsupportedMediaType         = add(Status{415, "Unsupported Media Type"})
	RequestedRangeNotSatisfiable = add(Status{416, "Requested Range Not Satisfiable"})
	ExpectationFailed            = add(Status{417, "Expectation Failed"})
	ImATeapot                    = add(Status{418, "I'm A Teapot"}) // Unused. But I like the joke.
	AuthenticationTimeout        = add(Status{419, "Authentication Timeout"})
	EnhanceYourCalm              = add(Status{420, "Enhance Your Calm"})
	UnprocessableEntity          = add(Status{422, "Unprocessable Entity"})
	Locked                       = add(Status{423, "Locked"})
	FailedDependency             = add(Status{424, "Failed Dependency"})
	PreconditionRequired         = add(Status{428, "Precondition Required"})
	TooManyRequests              = add(Status{429, "Too Many Requests"})
	RequestHeaderFieldsTooLarge  = add(Status{431, "Request Header Fields Too Large"})
)

// Server Error 5xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-server-error-5xx
var (
	InternalServerError           = add(Status{500, "Internal Server Error"})
	NotImplemented                = add(Status{501, "Not Implemented"})
	BadGateway                    = add(Status{502, "Bad Gateway"})
	ServiceUnavailable            = add(Status{503, "Service Unavailable"})
	GatewayTimeout                = add(Status{504, "Gateway Timeout"})
	HTTPVersionNotSupported       = add(Status{505, "HTTP Version Not Supported"})
	VariantAlsoNegotiates         = add(Status{506, "Variant Also Negotiates"})
	InsufficientStorage           = add(Status{507, "Insufficient Storage"})
	LoopDetected                  = add(Status{508, "Loop Detected"})
	NotExtended                   = add(Status{510, "Not Extended"})
	NetworkAuthenticationRequired = add(Status{511, "Network Authentication Required"})
)

var table = make(map[uint]*Status)

func add(status Status) Status {
	table[status.Code] = &status
	return status
}
