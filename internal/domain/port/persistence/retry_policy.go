package persistence

import "context"

// RetryPolicy re-runs an operation that failed with a transient storage error
// such as a deadlock, a serialization failure or a dropped connection
type RetryPolicy interface {
	Do(ctx context.Context, operation func(ctx context.Context) error) error
}
