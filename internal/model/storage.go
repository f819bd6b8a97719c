package model

import "context"

// Pinger reports whether the underlying storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
