package ticket

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fondrenlibrary/name-authority/internal/platform/database/schema"
	"github.com/fondrenlibrary/name-authority/internal/platform/dberr"
)

// PostgresAllocator implements Allocator on the name_tickets table.
//
// The table holds at most one row (its stub column is unique). Each
// allocation deletes the live row and re-inserts it inside a single
// transaction; the serial primary key advances on every insert and
// never reuses a value, which yields the strictly increasing sequence.
// Two concurrent allocations serialize on the unique index: the loser
// fails and surfaces the error to the caller rather than retrying.
type PostgresAllocator struct {
	db *pgxpool.Pool
}

func NewPostgresAllocator(db *pgxpool.Pool) *PostgresAllocator {
	return &PostgresAllocator{db: db}
}

func (allocator *PostgresAllocator) Allocate(ctx context.Context) (int64, error) {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = TRUE`,
		schema.RefTicket.Table, schema.RefTicket.Stub,
	)
	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (TRUE) RETURNING %s`,
		schema.RefTicket.Table, schema.RefTicket.Stub, schema.RefTicket.ID,
	)

	var id int64
	err := pgx.BeginFunc(ctx, allocator.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteQuery); err != nil {
			return err
		}
		return tx.QueryRow(ctx, insertQuery).Scan(&id)
	})
	if err != nil {
		return 0, dberr.Wrap(err, "allocate_ticket")
	}

	return id, nil
}
