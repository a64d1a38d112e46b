package strkey

import "fmt"

// Reason enumerates why a strkey failed to decode, per spec.md §4.2.
type Reason string

const (
	ReasonBadLength   Reason = "badLength"
	ReasonBadChecksum Reason = "badChecksum"
	ReasonBadVersion  Reason = "badVersion"
	ReasonBadBase32   Reason = "badBase32"
	ReasonBadPayload  Reason = "badPayload"
)

// InvalidError is returned by Decode/Encode when a strkey is malformed. It
// carries the expected kind and a structured Reason so callers can branch on
// failure mode without parsing the message.
type InvalidError struct {
	Kind   VersionByte
	Reason Reason
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid strkey (kind=%s): %s", e.Kind, e.Reason)
}

func invalid(kind VersionByte, reason Reason) error {
	return &InvalidError{Kind: kind, Reason: reason}
}
