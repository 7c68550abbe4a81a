package clipboard

import (
	"context"
	"fmt"

	atotto "github.com/atotto/clipboard"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type system struct{}

// NewSystem writes to the native OS clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API, whichever atotto/clipboard finds).
func NewSystem() ports.Clipboard {
	return system{}
}

func (system) WriteText(ctx context.Context, text string) error {
	if atotto.Unsupported {
		return fmt.Errorf("system clipboard: %w", domain.ErrClipboardUnavailable)
	}

	done := make(chan error, 1)
	go func() {
		done <- atotto.WriteAll(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("system clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
