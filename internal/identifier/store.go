package identifier

import "context"

// Repository persists the identifier rows and the type catalog.
type Repository interface {
	ListForName(ctx context.Context, nameID int64, publicOnly bool) ([]*Identifier, error)
	Get(ctx context.Context, id int64) (*Identifier, error)
	Create(ctx context.Context, i *Identifier) error
	Update(ctx context.Context, i *Identifier) error
	Delete(ctx context.Context, id int64) error

	ListTypes(ctx context.Context) ([]*IdentifierType, error)
	GetType(ctx context.Context, id int64) (*IdentifierType, error)
	CreateType(ctx context.Context, t *IdentifierType) error
	UpdateType(ctx context.Context, t *IdentifierType) error
	DeleteType(ctx context.Context, id int64) error
}
