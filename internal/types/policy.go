package types

// Policy selects how decoders react to structural violations.
//
// The policy is chosen once per decode call and threaded as a parameter
// through every sub-decoder; it is never global state, so both policies can
// be exercised side by side in the same process.
type Policy int

const (
	// Lenient drops the offending item or substitutes a documented default
	// and records a Warning. This is the default policy.
	Lenient Policy = iota

	// Strict turns every structural violation into an error that propagates
	// to the top-level caller with section-identifying context.
	Strict
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	default:
		return "lenient"
	}
}
