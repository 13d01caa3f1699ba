package panelwatch

// Status represents the monitored site's health as last observed.
//
// Status is a string type with two values, [StatusUp] and [StatusDown].
type Status string

const (
	// StatusUp indicates the site answered the last probe with anything
	// other than a server error.
	StatusUp Status = "up"

	// StatusDown indicates the last probe failed in transport or returned
	// a server error.
	StatusDown Status = "down"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// Classify maps a probe outcome to a [Status].
//
// A transport error or a negative status code classifies as down. Any code
// below 500 classifies as up: 1xx/2xx/3xx/4xx all mean the server answered.
// Only 5xx and transport failures count as down.
func Classify(code int, err error) Status {
	if err != nil {
		return StatusDown
	}
	if code < 0 {
		return StatusDown
	}
	if code < 500 {
		return StatusUp
	}
	return StatusDown
}

// Describe names the class of a probe status code for diagnostics.
func Describe(code int) string {
	switch {
	case code < 0:
		return "connection error"
	case code < 200:
		return "informational"
	case code < 300:
		return "success"
	case code < 400:
		return "redirect"
	case code < 500:
		return "client error"
	default:
		return "server error"
	}
}
