package verification

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerFor recovers the expected sum from the question text.
func answerFor(t *testing.T, ch Challenge) int {
	t.Helper()
	var a, b int
	_, err := fmt.Sscanf(ch.Question, "What is %d + %d?", &a, &b)
	require.NoError(t, err)
	return a + b
}

func TestGenerateOperandRange(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 100; i++ {
		ch := e.Generate()
		var a, b int
		_, err := fmt.Sscanf(ch.Question, "What is %d + %d?", &a, &b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a, 1)
		assert.LessOrEqual(t, a, 10)
		assert.GreaterOrEqual(t, b, 1)
		assert.LessOrEqual(t, b, 10)
		assert.NotEmpty(t, ch.ID)
	}
}

func TestVerifyCorrectAnswerPasses(t *testing.T) {
	e := NewEngine()
	ch := e.Generate()

	res := e.Verify(ch.ID, strconv.Itoa(answerFor(t, ch)))
	assert.True(t, res.Passed)
	assert.Nil(t, res.Next)
}

func TestVerifyWrongAnswerIssuesFreshChallenge(t *testing.T) {
	e := NewEngine()
	ch := e.Generate()
	wrong := answerFor(t, ch) + 1

	res := e.Verify(ch.ID, strconv.Itoa(wrong))
	assert.False(t, res.Passed)
	require.NotNil(t, res.Next)
	assert.NotEqual(t, ch.ID, res.Next.ID)

	// The failed challenge is consumed: the right answer no longer works.
	res = e.Verify(ch.ID, strconv.Itoa(answerFor(t, ch)))
	assert.False(t, res.Passed)
	require.NotNil(t, res.Next)
}

func TestVerifyMalformedAnswerFails(t *testing.T) {
	e := NewEngine()

	for _, answer := range []string{"abc", "", "-3", "21"} {
		ch := e.Generate()
		res := e.Verify(ch.ID, answer)
		assert.False(t, res.Passed, "answer %q should fail", answer)
		require.NotNil(t, res.Next)
	}
}

func TestVerifyUnknownChallengeFails(t *testing.T) {
	e := NewEngine()
	res := e.Verify("no-such-id", "4")
	assert.False(t, res.Passed)
	require.NotNil(t, res.Next)
}

func TestVerifyConsumesChallengeOnPass(t *testing.T) {
	e := NewEngine()
	ch := e.Generate()
	answer := strconv.Itoa(answerFor(t, ch))

	assert.True(t, e.Verify(ch.ID, answer).Passed)
	assert.False(t, e.Verify(ch.ID, answer).Passed)
}
