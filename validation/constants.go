package validation

// Rating bounds (stars).
const (
	MinRating = 1
	MaxRating = 5
)

// Review comment length bounds, applied after trimming.
const (
	MinCommentLength = 10
	MaxCommentLength = 500
)

// MaxUserNameLength caps reviewer display names.
const MaxUserNameLength = 50

// Verification answers outside this range are rejected before comparison.
// The true range of a 1..10 + 1..10 sum is 2..20; the wider 0..20 bound is
// intentionally conservative.
const (
	MinVerificationAnswer = 0
	MaxVerificationAnswer = 20
)
