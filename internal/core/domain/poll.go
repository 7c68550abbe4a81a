package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinOptions = 2
	MaxOptions = 6
)

type Poll struct {
	ID         uuid.UUID `json:"id"`
	Question   string    `json:"question"`
	Options    []Option  `json:"options"`
	TotalVotes int       `json:"total_votes"`
	CreatedAt  time.Time `json:"created_at"`
}

type Option struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// NewPoll builds a poll with zero votes. Callers are expected to have
// validated question and options already.
func NewPoll(question string, options []string, now time.Time) (*Poll, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	poll := &Poll{
		ID:        id,
		Question:  question,
		Options:   make([]Option, 0, len(options)),
		CreatedAt: now,
	}
	for _, text := range options {
		poll.Options = append(poll.Options, Option{Text: text})
	}

	return poll, nil
}

// ValidPoll reports whether question and options pass the creation gate.
func ValidPoll(question string, options []string) bool {
	if strings.TrimSpace(question) == "" {
		return false
	}
	if len(options) < MinOptions || len(options) > MaxOptions {
		return false
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so the options slice is never shared.
func (p *Poll) Clone() *Poll {
	c := *p
	c.Options = append([]Option(nil), p.Options...)
	return &c
}

// Tally sums option votes. It always equals TotalVotes.
func (p *Poll) Tally() int {
	sum := 0
	for _, opt := range p.Options {
		sum += opt.Votes
	}
	return sum
}
