package domain

import "errors"

var (
	ErrPollNotFound         = errors.New("poll not found")
	ErrInvalidPollID        = errors.New("invalid poll id")
	ErrInvalidOption        = errors.New("invalid option for this poll")
	ErrInvalidDraft         = errors.New("poll needs a question and non-empty options")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
