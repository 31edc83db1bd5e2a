package safety

import "context"

// Repo abstracts the ban/report records keyed by connection origin.
type Repo interface {
	// IsBanned reports whether origin is on the ban list.
	IsBanned(ctx context.Context, origin string) (bool, error)
	// Ban adds origin to the ban list.
	Ban(ctx context.Context, origin string) error
	// Report increments origin's report count and returns the new total.
	Report(ctx context.Context, origin string) (int64, error)
	// Reports returns origin's current report count.
	Reports(ctx context.Context, origin string) (int64, error)
}
