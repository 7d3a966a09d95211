package port

import "context"

// ReputationFeed queries a third-party URL reputation service. An empty label
// with a nil error means the feed has no opinion.
type ReputationFeed interface {
	Lookup(ctx context.Context, rawURL string) (label string, err error)
}

// CheckMetrics records the outcome of every check.
type CheckMetrics interface {
	RecordCheck(ctx context.Context, kind, verdict, method string, score int)
}
