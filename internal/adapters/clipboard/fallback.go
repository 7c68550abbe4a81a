package clipboard

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type fallback struct {
	chain  []ports.Clipboard
	logger zerolog.Logger
}

// NewFallback tries each clipboard in order and stops at the first one
// that succeeds.
func NewFallback(logger zerolog.Logger, chain ...ports.Clipboard) ports.Clipboard {
	return &fallback{
		chain:  chain,
		logger: logger.With().Str("component", "clipboard").Logger(),
	}
}

func (f *fallback) WriteText(ctx context.Context, text string) error {
	if len(f.chain) == 0 {
		return domain.ErrClipboardUnavailable
	}

	var errs []error
	for i, c := range f.chain {
		err := c.WriteText(ctx, text)
		if err == nil {
			if i > 0 {
				f.logger.Debug().Int("attempt", i+1).Msg("clipboard fallback used")
			}
			return nil
		}
		f.logger.Debug().Err(err).Int("attempt", i+1).Msg("clipboard write failed")
		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}

	return errors.Join(errs...)
}
