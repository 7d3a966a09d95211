package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
)

// DefaultFeedTimeout bounds a single reputation feed query.
const DefaultFeedTimeout = 3 * time.Second

// ExternalSignal wraps a third-party reputation feed with a hard timeout. Every
// failure is reported as "no signal".
type ExternalSignal struct {
	feed    port.ReputationFeed
	logger  *slog.Logger
	timeout time.Duration
}

// NewExternalSignal creates an ExternalSignal. A nil feed disables the signal.
func NewExternalSignal(feed port.ReputationFeed, timeout time.Duration, logger *slog.Logger) *ExternalSignal {
	if timeout <= 0 {
		timeout = DefaultFeedTimeout
	}
	return &ExternalSignal{feed: feed, timeout: timeout, logger: logger}
}

// Enabled reports whether a feed is configured.
func (s *ExternalSignal) Enabled() bool {
	return s.feed != nil
}

type feedAnswer struct {
	err   error
	label string
}

// Query returns the feed's threat label for rawURL, if any. It returns no later
// than the timeout even when the feed ignores its context; a label arriving
// after the deadline is discarded.
func (s *ExternalSignal) Query(ctx context.Context, rawURL string) (string, bool) {
	if s.feed == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answers := make(chan feedAnswer, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				answers <- feedAnswer{err: fmt.Errorf("reputation feed panicked: %v", r)}
			}
		}()
		label, err := s.feed.Lookup(ctx, rawURL)
		answers <- feedAnswer{label: label, err: err}
	}()

	select {
	case <-ctx.Done():
		s.logger.Debug("reputation feed timed out", slog.String("error", ctx.Err().Error()))
		return "", false
	case a := <-answers:
		if a.err != nil {
			s.logger.Debug("reputation feed unavailable", slog.String("error", a.err.Error()))
			return "", false
		}
		if ctx.Err() != nil {
			return "", false
		}
		return a.label, a.label != ""
	}
}
