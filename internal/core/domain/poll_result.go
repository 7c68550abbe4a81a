package domain

import "github.com/google/uuid"

type PollResult struct {
	PollID     uuid.UUID      `json:"poll_id"`
	Question   string         `json:"question"`
	TotalVotes int            `json:"total_votes"`
	Options    []OptionResult `json:"options"`
	// Leaders holds the indexes of the options with the most votes. Empty
	// while nobody has voted.
	Leaders []int `json:"leaders"`
}

type OptionResult struct {
	Index      int    `json:"index"`
	Text       string `json:"text"`
	VoteCount  int    `json:"vote_count"`
	Percentage int    `json:"percentage"`
}

// PercentageOf returns votes as a whole percentage of total, rounding half
// up. A zero total yields 0. Percentages of one poll's options are rounded
// independently and may not add up to exactly 100.
func PercentageOf(votes, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*votes + total) / (2 * total)
}

func NewPollResult(poll *Poll) *PollResult {
	result := &PollResult{
		PollID:     poll.ID,
		Question:   poll.Question,
		TotalVotes: poll.TotalVotes,
		Options:    make([]OptionResult, 0, len(poll.Options)),
		Leaders:    []int{},
	}

	best := 0
	for i, opt := range poll.Options {
		result.Options = append(result.Options, OptionResult{
			Index:      i,
			Text:       opt.Text,
			VoteCount:  opt.Votes,
			Percentage: PercentageOf(opt.Votes, poll.TotalVotes),
		})
		switch {
		case opt.Votes == 0:
		case opt.Votes > best:
			best = opt.Votes
			result.Leaders = []int{i}
		case opt.Votes == best:
			result.Leaders = append(result.Leaders, i)
		}
	}

	return result
}
