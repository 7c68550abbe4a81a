package services

import (
	"time"

	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type systemClock struct{}

func SystemClock() ports.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
