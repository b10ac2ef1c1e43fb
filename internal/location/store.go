package location

import "context"

// Repository persists locations. Save carries the exclusivity rule: a
// Current location displaces any other Current row for the same record,
// atomically.
type Repository interface {
	ListForName(ctx context.Context, nameID int64) ([]*Location, error)
	// CurrentLocation returns the record's Current location, or nil when
	// every location is Former or the record has none.
	CurrentLocation(ctx context.Context, nameID int64) (*Location, error)
	Get(ctx context.Context, id int64) (*Location, error)
	CountForName(ctx context.Context, nameID int64) (int, error)
	Save(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id int64) error
}
