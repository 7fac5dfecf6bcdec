package analyze

// classifies how an exchange failed
type ErrorKind int

const (
	// the client-side bound elapsed before the service answered
	KindTimeout ErrorKind = iota
	// network/connection failure or an unparseable response
	KindTransport
	// the service answered with a non-2xx status
	KindService
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// terminal failure of one exchange. Never retried by the client; the
// caller decides whether to resubmit.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int // HTTP status for KindService, zero otherwise
}

func (e *Error) Error() string {
	return e.Message
}

// message shown when the bounding timer fires
const timeoutMessage = "Request timed out. Please try again."

// fallback when an error body carries no usable message
const fallbackErrorMessage = "Request failed"
