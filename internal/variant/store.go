package variant

import "context"

type Repository interface {
	ListForName(ctx context.Context, nameID int64) ([]*Variant, error)
	Get(ctx context.Context, id int64) (*Variant, error)
	Create(ctx context.Context, v *Variant) error
	Update(ctx context.Context, v *Variant) error
	Delete(ctx context.Context, id int64) error
}
