package entity

// GateState is the derived resolution of the access gate. It is never stored.
type GateState int

const (
	// GateUnknown is the initial state while the check is outstanding.
	GateUnknown GateState = iota
	// GateGranted means protected content may render.
	GateGranted
	// GateDenied means the locked preview must render instead.
	GateDenied
)

// String returns the lowercase name used on the wire.
func (s GateState) String() string {
	switch s {
	case GateGranted:
		return "granted"
	case GateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// MarshalText renders the state as its name in JSON payloads.
func (s GateState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsResolved reports whether the gate left the Unknown state.
func (s GateState) IsResolved() bool {
	return s == GateGranted || s == GateDenied
}

// LockReason explains a Denied resolution to the locked preview.
type LockReason string

const (
	LockReasonLoginRequired    LockReason = "login_required"
	LockReasonNotEntitled      LockReason = "not_entitled"
	LockReasonStoreUnavailable LockReason = "store_unavailable"
)
