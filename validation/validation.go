// Package validation provides the field validators used by the review
// submission flow. All validators are pure and field-scoped: a failed
// result blocks submission but is never fatal.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Result reports the outcome of a single field validation.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// ValidateRating checks that a rating is within the star range.
func ValidateRating(rating int) Result {
	if rating < MinRating || rating > MaxRating {
		return invalid(fmt.Sprintf("Rating must be between %d and %d", MinRating, MaxRating))
	}
	return valid()
}

// ValidateComment checks the review comment length after trimming.
func ValidateComment(comment string) Result {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return invalid("Comment is required")
	}
	if len(trimmed) < MinCommentLength {
		return invalid(fmt.Sprintf("Comment must be at least %d characters", MinCommentLength))
	}
	if len(comment) > MaxCommentLength {
		return invalid(fmt.Sprintf("Comment must be no more than %d characters", MaxCommentLength))
	}
	return valid()
}

// ValidateUserName checks the reviewer name for length and characters that
// could be used for markup injection.
func ValidateUserName(userName string) Result {
	trimmed := strings.TrimSpace(userName)
	if trimmed == "" {
		return invalid("Name is required")
	}
	if len(trimmed) > MaxUserNameLength {
		return invalid(fmt.Sprintf("Name must be no more than %d characters", MaxUserNameLength))
	}
	if strings.ContainsAny(userName, "<>{}") {
		return invalid("Name contains invalid characters")
	}
	return valid()
}

// ValidateVerificationAnswer checks that a submitted challenge answer is a
// number within the conservative answer bound. It accepts the raw string so
// malformed input is reported as a validation failure, not a parse panic.
func ValidateVerificationAnswer(answer string) Result {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return invalid("Please enter a valid number")
	}
	if n < MinVerificationAnswer || n > MaxVerificationAnswer {
		return invalid("Answer must be a positive number")
	}
	return valid()
}
