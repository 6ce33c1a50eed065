package ports

import "context"

// Extractor turns a file on disk into plain text. Failures (unreadable,
// corrupt, unsupported format) are recovered by the caller, never fatal to a
// whole aggregation run.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}
