package identifier

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

func (repository *PostgresRepository) ListForName(ctx context.Context, nameID int64, publicOnly bool) ([]*Identifier, error) {
	t := schema.RefIdentifier
	visibility := ""
	if publicOnly {
		visibility = fmt.Sprintf(" AND %s = TRUE", t.Visible)
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1%s ORDER BY %s ASC, %s ASC`,
		t.ID, t.NameID, t.TypeID, t.Value, t.Visible, t.DisplayOrder,
		t.Table, t.NameID, visibility, t.DisplayOrder, t.ID,
	)

	rows, err := repository.db.Query(ctx, query, nameID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_identifiers")
	}
	defer rows.Close()

	var identifiers []*Identifier
	for rows.Next() {
		i := &Identifier{}
		if err := rows.Scan(&i.ID, &i.NameID, &i.TypeID, &i.Value, &i.Visible, &i.DisplayOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_identifier")
		}
		identifiers = append(identifiers, i)
	}
	return identifiers, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int64) (*Identifier, error) {
	t := schema.RefIdentifier
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.NameID, t.TypeID, t.Value, t.Visible, t.DisplayOrder, t.Table, t.ID,
	)

	i := &Identifier{}
	err := repository.db.QueryRow(ctx, query, id).
		Scan(&i.ID, &i.NameID, &i.TypeID, &i.Value, &i.Visible, &i.DisplayOrder)
	if err != nil {
		return nil, dberr.Wrap(err, "get_identifier")
	}
	return i, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, i *Identifier) error {
	t := schema.RefIdentifier
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5) RETURNING %s`,
		t.Table, t.NameID, t.TypeID, t.Value, t.Visible, t.DisplayOrder, t.ID,
	)

	err := repository.db.QueryRow(ctx, query, i.NameID, i.TypeID, i.Value, i.Visible, i.DisplayOrder).Scan(&i.ID)
	return dberr.Wrap(err, "create_identifier")
}

func (repository *PostgresRepository) Update(ctx context.Context, i *Identifier) error {
	t := schema.RefIdentifier
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		t.Table, t.TypeID, t.Value, t.Visible, t.DisplayOrder, t.ID,
	)

	tag, err := repository.db.Exec(ctx, query, i.ID, i.TypeID, i.Value, i.Visible, i.DisplayOrder)
	if err != nil {
		return dberr.Wrap(err, "update_identifier")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	t := schema.RefIdentifier
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_identifier")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Type catalog

func (repository *PostgresRepository) ListTypes(ctx context.Context) ([]*IdentifierType, error) {
	t := schema.RefIdentifierType
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.Label, t.IconPath, t.Homepage, t.Table, t.Label,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_identifier_types")
	}
	defer rows.Close()

	var types []*IdentifierType
	for rows.Next() {
		it := &IdentifierType{}
		if err := rows.Scan(&it.ID, &it.Label, &it.IconPath, &it.Homepage); err != nil {
			return nil, dberr.Wrap(err, "scan_identifier_type")
		}
		types = append(types, it)
	}
	return types, nil
}

func (repository *PostgresRepository) GetType(ctx context.Context, id int64) (*IdentifierType, error) {
	t := schema.RefIdentifierType
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Label, t.IconPath, t.Homepage, t.Table, t.ID,
	)

	it := &IdentifierType{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&it.ID, &it.Label, &it.IconPath, &it.Homepage)
	if err != nil {
		return nil, dberr.Wrap(err, "get_identifier_type")
	}
	return it, nil
}

func (repository *PostgresRepository) CreateType(ctx context.Context, it *IdentifierType) error {
	t := schema.RefIdentifierType
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		t.Table, t.Label, t.IconPath, t.Homepage, t.ID,
	)

	err := repository.db.QueryRow(ctx, query, it.Label, it.IconPath, it.Homepage).Scan(&it.ID)
	return dberr.Wrap(err, "create_identifier_type")
}

func (repository *PostgresRepository) UpdateType(ctx context.Context, it *IdentifierType) error {
	t := schema.RefIdentifierType
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		t.Table, t.Label, t.IconPath, t.Homepage, t.ID,
	)

	tag, err := repository.db.Exec(ctx, query, it.ID, it.Label, it.IconPath, it.Homepage)
	if err != nil {
		return dberr.Wrap(err, "update_identifier_type")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteType(ctx context.Context, id int64) error {
	t := schema.RefIdentifierType
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_identifier_type")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
