// Package verification implements the arithmetic challenge used as a
// lightweight anti-automation gate on review submission. A challenge moves
// from issued to passed or failed exactly once; any failure discards it and
// issues a fresh question so the same answer cannot be retried. This is a
// deterrent against casual automated submission, not an access control.
package verification

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/business-boost/api-go/validation"
)

// DefaultTTL is how long an issued challenge stays answerable.
const DefaultTTL = 10 * time.Minute

// Challenge is an issued question. The answer stays server-side; clients
// only ever see the id and the question text.
type Challenge struct {
	ID       string    `json:"challengeId"`
	Question string    `json:"question"`
	answer   int
	issuedAt time.Time
}

// Result is the outcome of answering a challenge. When Passed is false a
// fresh challenge is always included.
type Result struct {
	Passed bool       `json:"passed"`
	Error  string     `json:"error,omitempty"`
	Next   *Challenge `json:"next,omitempty"`
}

// Engine issues challenges and checks answers. Safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	issued map[string]Challenge
	ttl    time.Duration
	rng    *rand.Rand
	now    func() time.Time
}

// NewEngine creates an engine with the default challenge TTL.
func NewEngine() *Engine {
	return &Engine{
		issued: make(map[string]Challenge),
		ttl:    DefaultTTL,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// Generate issues a new challenge: the sum of two independent uniform
// integers from 1 to 10 inclusive.
func (e *Engine) Generate() Challenge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generateLocked()
}

func (e *Engine) generateLocked() Challenge {
	e.sweepLocked()

	a := e.rng.Intn(10) + 1
	b := e.rng.Intn(10) + 1
	ch := Challenge{
		ID:       uuid.NewString(),
		Question: fmt.Sprintf("What is %d + %d?", a, b),
		answer:   a + b,
		issuedAt: e.now(),
	}
	e.issued[ch.ID] = ch
	return ch
}

// Verify checks a submitted answer against the identified challenge.
// The challenge is consumed either way: on a pass it is simply removed, on
// any failure (wrong answer, malformed or out-of-bounds input, unknown or
// expired id) a fresh challenge is returned for the next attempt.
func (e *Engine) Verify(challengeID, answer string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch, ok := e.issued[challengeID]
	if ok {
		delete(e.issued, challengeID)
	}
	if !ok || e.now().Sub(ch.issuedAt) > e.ttl {
		next := e.generateLocked()
		return Result{Passed: false, Error: "Verification expired, please try again", Next: &next}
	}

	if res := validation.ValidateVerificationAnswer(answer); !res.Valid {
		next := e.generateLocked()
		return Result{Passed: false, Error: res.Error, Next: &next}
	}

	n, _ := strconv.Atoi(strings.TrimSpace(answer))
	if n != ch.answer {
		next := e.generateLocked()
		return Result{Passed: false, Error: "Incorrect answer, please try again", Next: &next}
	}

	return Result{Passed: true}
}

// sweepLocked drops expired challenges so abandoned ones do not accumulate.
func (e *Engine) sweepLocked() {
	cutoff := e.now().Add(-e.ttl)
	for id, ch := range e.issued {
		if ch.issuedAt.Before(cutoff) {
			delete(e.issued, id)
		}
	}
}
