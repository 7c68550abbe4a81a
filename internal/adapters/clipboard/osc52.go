package clipboard

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type osc52 struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOSC52 asks the terminal attached to w to set its clipboard using the
// OSC 52 escape sequence. Works over SSH and in headless sessions where no
// native clipboard exists, as long as the terminal honours the sequence.
func NewOSC52(w io.Writer) ports.Clipboard {
	return &osc52{w: w}
}

func (c *osc52) WriteText(ctx context.Context, text string) error {
	if c.w == nil {
		return fmt.Errorf("osc52: %w", domain.ErrClipboardUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
	if _, err := io.WriteString(c.w, seq); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}
