package note

import "context"

type Repository interface {
	ListForName(ctx context.Context, nameID int64, publicOnly bool) ([]*Note, error)
	Get(ctx context.Context, id int64) (*Note, error)
	Create(ctx context.Context, n *Note) error
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, id int64) error
}
