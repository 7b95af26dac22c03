package ptp

// MNGError is the flat error enumeration every build/parse call resolves
// to (spec.md §7). It implements the error interface so callers can use
// plain Go error handling while still switching on the exact code with
// errors.Is against the package-level sentinels below.
type MNGError int

const (
	ErrOK MNGError = iota
	ErrMSG
	ErrInvalidID
	ErrInvalidTLV
	ErrSizeMiss
	ErrTooSmall
	ErrSize
	ErrVal
	ErrHeader
	ErrAction
	ErrUnsupport
	ErrMem
)

var errNames = map[MNGError]string{
	ErrOK:        "OK",
	ErrMSG:       "MSG",
	ErrInvalidID: "INVALID_ID",
	ErrInvalidTLV: "INVALID_TLV",
	ErrSizeMiss:  "SIZE_MISS",
	ErrTooSmall:  "TOO_SMALL",
	ErrSize:      "SIZE",
	ErrVal:       "VAL",
	ErrHeader:    "HEADER",
	ErrAction:    "ACTION",
	ErrUnsupport: "UNSUPPORT",
	ErrMem:       "MEM",
}

func (e MNGError) String() string {
	if s, ok := errNames[e]; ok {
		return s
	}
	return "UNKNOWN_ERROR"
}

// Error implements the error interface. ErrOK never surfaces as a non-nil
// error; callers should use OrNil below rather than compare to ErrOK.
func (e MNGError) Error() string {
	return "ptp: " + e.String()
}

// OrNil returns nil when e is ErrOK, otherwise e itself as an error, so
// the zero-value success case satisfies plain `if err != nil` checks.
func (e MNGError) OrNil() error {
	if e == ErrOK {
		return nil
	}
	return e
}

// MNGError implements error, so the codes above serve directly as
// sentinels: `errors.Is(err, ptp.ErrTooSmall)`.
var (
	_ error = ErrOK
)
