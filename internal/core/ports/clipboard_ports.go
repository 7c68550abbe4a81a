package ports

import (
	"context"
	"time"
)

type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

type Clock interface {
	Now() time.Time
}
