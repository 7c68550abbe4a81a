package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/clipboard"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/quickpoll/internal/config"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/core/services"
)

type app struct {
	polls      ports.PollService
	summaries  ports.SummaryService
	controller ports.Controller
}

// newApp wires the in-memory store to one controller. The OSC 52 fallback
// is only added when a terminal is given to write it to.
func newApp(cfg config.Config, logger zerolog.Logger, term io.Writer) *app {
	clock := services.SystemClock()

	// Initialize Repositories
	pollRepo := memory.NewPollRepository()

	// Initialize Services
	pollService := services.NewPollService(pollRepo, clock, logger)
	voteService := services.NewVoteService(pollRepo, logger)

	chain := []ports.Clipboard{clipboard.NewSystem()}
	if cfg.OSC52 && term != nil {
		chain = append(chain, clipboard.NewOSC52(term))
	}

	return &app{
		polls:      pollService,
		summaries:  services.NewSummaryService(pollRepo),
		controller: services.NewController(pollService, voteService, clipboard.NewFallback(logger, chain...), clock, logger),
	}
}
