package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRating(t *testing.T) {
	assert.True(t, ValidateRating(1).Valid)
	assert.True(t, ValidateRating(3).Valid)
	assert.True(t, ValidateRating(5).Valid)

	assert.False(t, ValidateRating(0).Valid)
	assert.False(t, ValidateRating(6).Valid)
	assert.False(t, ValidateRating(-2).Valid)
}

func TestValidateComment(t *testing.T) {
	assert.True(t, ValidateComment("This place was great!").Valid)

	res := ValidateComment("")
	assert.False(t, res.Valid)
	assert.Equal(t, "Comment is required", res.Error)

	// Whitespace-only counts as empty.
	assert.False(t, ValidateComment("   \t  ").Valid)

	// Too short after trimming.
	assert.False(t, ValidateComment("  short   ").Valid)

	// Exactly at the minimum passes.
	assert.True(t, ValidateComment("1234567890").Valid)

	assert.False(t, ValidateComment(strings.Repeat("x", 501)).Valid)
	assert.True(t, ValidateComment(strings.Repeat("x", 500)).Valid)
}

func TestValidateUserName(t *testing.T) {
	assert.True(t, ValidateUserName("Sarah M.").Valid)

	assert.False(t, ValidateUserName("").Valid)
	assert.False(t, ValidateUserName("   ").Valid)
	assert.False(t, ValidateUserName(strings.Repeat("a", 51)).Valid)
	assert.True(t, ValidateUserName(strings.Repeat("a", 50)).Valid)

	for _, name := range []string{"<script>", "a{b}", "x>y", "le<ss"} {
		res := ValidateUserName(name)
		assert.False(t, res.Valid, "expected %q to be rejected", name)
		assert.Equal(t, "Name contains invalid characters", res.Error)
	}
}

func TestValidateVerificationAnswer(t *testing.T) {
	assert.True(t, ValidateVerificationAnswer("11").Valid)
	assert.True(t, ValidateVerificationAnswer(" 20 ").Valid)
	assert.True(t, ValidateVerificationAnswer("0").Valid)

	assert.False(t, ValidateVerificationAnswer("twelve").Valid)
	assert.False(t, ValidateVerificationAnswer("").Valid)
	assert.False(t, ValidateVerificationAnswer("-1").Valid)
	assert.False(t, ValidateVerificationAnswer("21").Valid)
}
