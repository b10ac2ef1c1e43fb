package name

import "context"

type Repository interface {
	GetByNameID(ctx context.Context, nameID string) (*Name, error)
	GetByID(ctx context.Context, id int64) (*Name, error)
	GetDetail(ctx context.Context, nameID string, includeNonpublic bool) (*Detail, error)
	Create(ctx context.Context, n *Name) error
	Update(ctx context.Context, n *Name) error
	Search(ctx context.Context, f Filter, limit, offset int) ([]*Name, int, error)
	Export(ctx context.Context, limit, offset int) ([]*Name, int, error)
	ResolveLabel(ctx context.Context, normalized string) (*Name, error)
	ActiveTypeCounts(ctx context.Context) (*TypeCounts, error)
	CountsByMonth(ctx context.Context, column StatsColumn) ([]MonthCount, error)
	MapPoints(ctx context.Context) ([]MapPoint, error)
}
