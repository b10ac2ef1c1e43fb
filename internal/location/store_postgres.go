package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) ListForName(ctx context.Context, nameID int64) ([]*Location, error) {
	t := schema.RefLocation
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		t.ID, t.NameID, t.Latitude, t.Longitude, t.Status,
		t.Table, t.NameID, t.Status, t.ID,
	)

	rows, err := repository.db.Query(ctx, query, nameID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_locations")
	}
	defer rows.Close()

	var locations []*Location
	for rows.Next() {
		l := &Location{}
		if err := rows.Scan(&l.ID, &l.NameID, &l.Latitude, &l.Longitude, &l.Status); err != nil {
			return nil, dberr.Wrap(err, "scan_location")
		}
		locations = append(locations, l)
	}
	return locations, nil
}

func (repository *PostgresRepository) CurrentLocation(ctx context.Context, nameID int64) (*Location, error) {
	t := schema.RefLocation
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 AND %s = %d ORDER BY %s ASC LIMIT 1`,
		t.ID, t.NameID, t.Latitude, t.Longitude, t.Status,
		t.Table, t.NameID, t.Status, StatusCurrent, t.ID,
	)

	l := &Location{}
	err := repository.db.QueryRow(ctx, query, nameID).
		Scan(&l.ID, &l.NameID, &l.Latitude, &l.Longitude, &l.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		// Having no Current location is a regular state, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "current_location")
	}
	return l, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int64) (*Location, error) {
	t := schema.RefLocation
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.NameID, t.Latitude, t.Longitude, t.Status, t.Table, t.ID,
	)

	l := &Location{}
	err := repository.db.QueryRow(ctx, query, id).
		Scan(&l.ID, &l.NameID, &l.Latitude, &l.Longitude, &l.Status)
	if err != nil {
		return nil, dberr.Wrap(err, "get_location")
	}
	return l, nil
}

func (repository *PostgresRepository) CountForName(ctx context.Context, nameID int64) (int, error) {
	t := schema.RefLocation
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, t.Table, t.NameID)

	var count int
	if err := repository.db.QueryRow(ctx, query, nameID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_locations")
	}
	return count, nil
}

// Save inserts or updates a location. When the row is Current, every
// other Current row for the same record is demoted to Former in the
// same transaction, so the exclusivity invariant holds no matter how
// saves interleave.
func (repository *PostgresRepository) Save(ctx context.Context, l *Location) error {
	t := schema.RefLocation

	demoteQuery := fmt.Sprintf(`UPDATE %s SET %s = %d WHERE %s = $1 AND %s = %d AND %s <> $2`,
		t.Table, t.Status, StatusFormer, t.NameID, t.Status, StatusCurrent, t.ID,
	)
	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		t.Table, t.NameID, t.Latitude, t.Longitude, t.Status, t.ID,
	)
	updateQuery := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		t.Table, t.Latitude, t.Longitude, t.Status, t.ID,
	)

	err := pgx.BeginFunc(ctx, repository.db, func(tx pgx.Tx) error {
		if l.Status == StatusCurrent {
			if _, err := tx.Exec(ctx, demoteQuery, l.NameID, l.ID); err != nil {
				return err
			}
		}

		if l.ID == 0 {
			return tx.QueryRow(ctx, insertQuery, l.NameID, l.Latitude, l.Longitude, l.Status).Scan(&l.ID)
		}

		tag, err := tx.Exec(ctx, updateQuery, l.ID, l.Latitude, l.Longitude, l.Status)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})

	return dberr.Wrap(err, "save_location")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	t := schema.RefLocation
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_location")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
