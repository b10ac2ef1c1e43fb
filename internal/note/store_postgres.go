package note

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

func (repository *PostgresRepository) ListForName(ctx context.Context, nameID int64, publicOnly bool) ([]*Note, error) {
	t := schema.RefNote
	visibility := ""
	if publicOnly {
		visibility = fmt.Sprintf(" AND %s <> %d", t.NoteType, TypeNonpublic)
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1%s ORDER BY %s ASC`,
		t.ID, t.NameID, t.Note, t.NoteType, t.Table, t.NameID, visibility, t.ID,
	)

	rows, err := repository.db.Query(ctx, query, nameID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_notes")
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		n := &Note{}
		if err := rows.Scan(&n.ID, &n.NameID, &n.Note, &n.Type); err != nil {
			return nil, dberr.Wrap(err, "scan_note")
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int64) (*Note, error) {
	t := schema.RefNote
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.NameID, t.Note, t.NoteType, t.Table, t.ID,
	)

	n := &Note{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&n.ID, &n.NameID, &n.Note, &n.Type)
	if err != nil {
		return nil, dberr.Wrap(err, "get_note")
	}
	return n, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, n *Note) error {
	t := schema.RefNote
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		t.Table, t.NameID, t.Note, t.NoteType, t.ID,
	)

	err := repository.db.QueryRow(ctx, query, n.NameID, n.Note, n.Type).Scan(&n.ID)
	return dberr.Wrap(err, "create_note")
}

func (repository *PostgresRepository) Update(ctx context.Context, n *Note) error {
	t := schema.RefNote
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		t.Table, t.Note, t.NoteType, t.ID,
	)

	tag, err := repository.db.Exec(ctx, query, n.ID, n.Note, n.Type)
	if err != nil {
		return dberr.Wrap(err, "update_note")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	t := schema.RefNote
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_note")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
