package variant

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fondrenlibrary/name-authority/internal/platform/database/schema"
	"github.com/fondrenlibrary/name-authority/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListForName(ctx context.Context, nameID int64) ([]*Variant, error) {
	t := schema.RefVariant
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		t.ID, t.NameID, t.VariantType, t.Variant, t.NormalizedVariant,
		t.Table, t.NameID, t.Variant,
	)

	rows, err := repository.db.Query(ctx, query, nameID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_variants")
	}
	defer rows.Close()

	var variants []*Variant
	for rows.Next() {
		v := &Variant{}
		if err := rows.Scan(&v.ID, &v.NameID, &v.Type, &v.Variant, &v.NormalizedVariant); err != nil {
			return nil, dberr.Wrap(err, "scan_variant")
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int64) (*Variant, error) {
	t := schema.RefVariant
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.NameID, t.VariantType, t.Variant, t.NormalizedVariant, t.Table, t.ID,
	)

	v := &Variant{}
	err := repository.db.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.NameID, &v.Type, &v.Variant, &v.NormalizedVariant)
	if err != nil {
		return nil, dberr.Wrap(err, "get_variant")
	}
	return v, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, v *Variant) error {
	t := schema.RefVariant
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		t.Table, t.NameID, t.VariantType, t.Variant, t.NormalizedVariant, t.ID,
	)

	err := repository.db.QueryRow(ctx, query, v.NameID, v.Type, v.Variant, v.NormalizedVariant).Scan(&v.ID)
	return dberr.Wrap(err, "create_variant")
}

func (repository *PostgresRepository) Update(ctx context.Context, v *Variant) error {
	t := schema.RefVariant
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		t.Table, t.VariantType, t.Variant, t.NormalizedVariant, t.ID,
	)

	tag, err := repository.db.Exec(ctx, query, v.ID, v.Type, v.Variant, v.NormalizedVariant)
	if err != nil {
		return dberr.Wrap(err, "update_variant")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	t := schema.RefVariant
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_variant")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
