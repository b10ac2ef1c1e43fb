package name

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fondrenlibrary/name-authority/internal/note"
	"github.com/fondrenlibrary/name-authority/internal/platform/database/schema"
	"github.com/fondrenlibrary/name-authority/internal/platform/dberr"
	"github.com/fondrenlibrary/name-authority/internal/variant"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the column list every row scan expects, with the
// merge target's public token resolved by subquery.
func selectColumns() string {
	t := schema.RefName
	return fmt.Sprintf(
		`n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s,
		 (SELECT m.%s FROM %s m WHERE m.%s = n.%s)`,
		t.ID, t.NameID, t.Name, t.NormalizedName, t.NameType, t.BeginDate, t.EndDate,
		t.Disambiguation, t.Biography, t.RecordStatus, t.MergedWithID, t.DateCreated, t.LastModified,
		t.NameID, t.Table, t.ID, t.MergedWithID,
	)
}

// visibleCondition restricts a query aliased as n to the visible set:
// Active status and no merge target.
func visibleCondition() string {
	return fmt.Sprintf("n.%s = %d AND n.%s IS NULL",
		schema.RefName.RecordStatus, StatusActive, schema.RefName.MergedWithID)
}

func scanName(row pgx.Row) (*Name, error) {
	n := &Name{}
	err := row.Scan(
		&n.ID, &n.NameID, &n.Name, &n.NormalizedName, &n.Type, &n.Begin, &n.End,
		&n.Disambiguation, &n.Biography, &n.Status, &n.MergedWithID,
		&n.DateCreated, &n.LastModified, &n.MergedWith,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (repository *PostgresRepository) GetByNameID(ctx context.Context, nameID string) (*Name, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s n WHERE n.%s = $1`,
		selectColumns(), schema.RefName.Table, schema.RefName.NameID,
	)

	n, err := scanName(repository.db.QueryRow(ctx, query, nameID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_name")
	}
	return n, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id int64) (*Name, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s n WHERE n.%s = $1`,
		selectColumns(), schema.RefName.Table, schema.RefName.ID,
	)

	n, err := scanName(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_name_by_id")
	}
	return n, nil
}

// GetDetail loads a record together with its owned rows. When
// includeNonpublic is false, hidden identifiers and nonpublic notes are
// left out of the view.
func (repository *PostgresRepository) GetDetail(ctx context.Context, nameID string, includeNonpublic bool) (*Detail, error) {
	n, err := repository.GetByNameID(ctx, nameID)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Name:        *n,
		Identifiers: []IdentifierView{},
		Notes:       []NoteView{},
		Variants:    []VariantView{},
		Locations:   []LocationView{},
	}

	if err := repository.loadIdentifiers(ctx, detail, includeNonpublic); err != nil {
		return nil, err
	}
	if err := repository.loadNotes(ctx, detail, includeNonpublic); err != nil {
		return nil, err
	}
	if err := repository.loadVariants(ctx, detail); err != nil {
		return nil, err
	}
	if err := repository.loadLocations(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

func (repository *PostgresRepository) loadIdentifiers(ctx context.Context, detail *Detail, includeNonpublic bool) error {
	i := schema.RefIdentifier
	t := schema.RefIdentifierType
	visibility := ""
	if !includeNonpublic {
		visibility = fmt.Sprintf(" AND i.%s = TRUE", i.Visible)
	}

	query := fmt.Sprintf(`
		SELECT i.%s, t.%s, t.%s, i.%s
		FROM %s i
		JOIN %s t ON t.%s = i.%s
		WHERE i.%s = $1%s
		ORDER BY i.%s ASC, i.%s ASC
	`,
		i.ID, t.Label, t.IconPath, i.Value,
		i.Table,
		t.Table, t.ID, i.TypeID,
		i.NameID, visibility,
		i.DisplayOrder, i.ID,
	)

	rows, err := repository.db.Query(ctx, query, detail.Name.ID)
	if err != nil {
		return dberr.Wrap(err, "get_name_identifiers")
	}
	defer rows.Close()

	for rows.Next() {
		var view IdentifierView
		if err := rows.Scan(&view.ID, &view.TypeLabel, &view.IconPath, &view.Value); err != nil {
			return dberr.Wrap(err, "scan_identifier")
		}
		detail.Identifiers = append(detail.Identifiers, view)
	}
	return nil
}

func (repository *PostgresRepository) loadNotes(ctx context.Context, detail *Detail, includeNonpublic bool) error {
	t := schema.RefNote
	visibility := ""
	if !includeNonpublic {
		visibility = fmt.Sprintf(" AND %s <> %d", t.NoteType, note.TypeNonpublic)
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1%s ORDER BY %s ASC`,
		t.ID, t.Note, t.NoteType, t.Table, t.NameID, visibility, t.ID,
	)

	rows, err := repository.db.Query(ctx, query, detail.Name.ID)
	if err != nil {
		return dberr.Wrap(err, "get_name_notes")
	}
	defer rows.Close()

	for rows.Next() {
		var view NoteView
		if err := rows.Scan(&view.ID, &view.Note, &view.NoteType); err != nil {
			return dberr.Wrap(err, "scan_note")
		}
		view.TypeLabel = note.Type(view.NoteType).Label()
		detail.Notes = append(detail.Notes, view)
	}
	return nil
}

func (repository *PostgresRepository) loadVariants(ctx context.Context, detail *Detail) error {
	t := schema.RefVariant

	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		t.ID, t.VariantType, t.Variant, t.Table, t.NameID, t.Variant,
	)

	rows, err := repository.db.Query(ctx, query, detail.Name.ID)
	if err != nil {
		return dberr.Wrap(err, "get_name_variants")
	}
	defer rows.Close()

	for rows.Next() {
		var view VariantView
		if err := rows.Scan(&view.ID, &view.VariantType, &view.Variant); err != nil {
			return dberr.Wrap(err, "scan_variant")
		}
		view.TypeLabel = variant.Type(view.VariantType).Label()
		detail.Variants = append(detail.Variants, view)
	}
	return nil
}

func (repository *PostgresRepository) loadLocations(ctx context.Context, detail *Detail) error {
	t := schema.RefLocation

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		t.ID, t.Latitude, t.Longitude, t.Status, t.Table, t.NameID, t.Status, t.ID,
	)

	rows, err := repository.db.Query(ctx, query, detail.Name.ID)
	if err != nil {
		return dberr.Wrap(err, "get_name_locations")
	}
	defer rows.Close()

	for rows.Next() {
		var view LocationView
		var status int
		if err := rows.Scan(&view.ID, &view.Latitude, &view.Longitude, &status); err != nil {
			return dberr.Wrap(err, "scan_location")
		}
		view.Current = status == 0
		detail.Locations = append(detail.Locations, view)
	}
	return nil
}

func (repository *PostgresRepository) Create(ctx context.Context, n *Name) error {
	t := schema.RefName
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s, %s
	`,
		t.Table, t.NameID, t.Name, t.NormalizedName, t.NameType, t.BeginDate,
		t.EndDate, t.Disambiguation, t.Biography, t.RecordStatus, t.MergedWithID,
		t.ID, t.DateCreated, t.LastModified,
	)

	err := repository.db.QueryRow(ctx, query,
		n.NameID, n.Name, n.NormalizedName, n.Type, n.Begin, n.End,
		n.Disambiguation, n.Biography, n.Status, n.MergedWithID,
	).Scan(&n.ID, &n.DateCreated, &n.LastModified)

	return dberr.Wrap(err, "create_name")
}

func (repository *PostgresRepository) Update(ctx context.Context, n *Name) error {
	t := schema.RefName
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.Name, t.NormalizedName, t.NameType, t.BeginDate, t.EndDate,
		t.Disambiguation, t.Biography, t.RecordStatus, t.MergedWithID, t.LastModified,
		t.ID,
		t.LastModified,
	)

	err := repository.db.QueryRow(ctx, query,
		n.ID, n.Name, n.NormalizedName, n.Type, n.Begin, n.End,
		n.Disambiguation, n.Biography, n.Status, n.MergedWithID,
	).Scan(&n.LastModified)

	return dberr.Wrap(err, "update_name")
}

func (repository *PostgresRepository) Search(ctx context.Context, f Filter, limit, offset int) ([]*Name, int, error) {
	t := schema.RefName
	where := visibleCondition()
	args := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		args = append(args, searchTerm)
		placeholder := fmt.Sprintf("$%d", len(args))
		where += fmt.Sprintf(` AND (n.%s LIKE %s OR EXISTS (
			SELECT 1 FROM %s v WHERE v.%s = n.%s AND v.%s LIKE %s))`,
			t.NormalizedName, placeholder,
			schema.RefVariant.Table, schema.RefVariant.NameID, t.ID,
			schema.RefVariant.NormalizedVariant, placeholder,
		)
	}

	if f.Type != nil {
		args = append(args, *f.Type)
		where += fmt.Sprintf(" AND n.%s = $%d", t.NameType, len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s n WHERE %s`, t.Table, where)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_names")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s n WHERE %s ORDER BY n.%s ASC LIMIT $%d OFFSET $%d`,
		selectColumns(), t.Table, where, t.Name, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_names")
	}
	defer rows.Close()

	var names []*Name
	for rows.Next() {
		n, err := scanName(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_name")
		}
		names = append(names, n)
	}

	return names, total, nil
}

func (repository *PostgresRepository) Export(ctx context.Context, limit, offset int) ([]*Name, int, error) {
	return repository.Search(ctx, Filter{}, limit, offset)
}

func (repository *PostgresRepository) ResolveLabel(ctx context.Context, normalized string) (*Name, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s n WHERE %s AND n.%s = $1 ORDER BY n.%s ASC LIMIT 1`,
		selectColumns(), schema.RefName.Table, visibleCondition(),
		schema.RefName.NormalizedName, schema.RefName.ID,
	)

	n, err := scanName(repository.db.QueryRow(ctx, query, normalized))
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_label")
	}
	return n, nil
}

func (repository *PostgresRepository) ActiveTypeCounts(ctx context.Context) (*TypeCounts, error) {
	query := fmt.Sprintf(`SELECT n.%s, count(*) FROM %s n WHERE %s GROUP BY n.%s`,
		schema.RefName.NameType, schema.RefName.Table, visibleCondition(), schema.RefName.NameType,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "active_type_counts")
	}
	defer rows.Close()

	counts := &TypeCounts{}
	for rows.Next() {
		var nameType Type
		var count int
		if err := rows.Scan(&nameType, &count); err != nil {
			return nil, dberr.Wrap(err, "scan_type_count")
		}

		counts.Add(nameType, count)
	}

	return counts, nil
}

func (repository *PostgresRepository) CountsByMonth(ctx context.Context, column StatsColumn) ([]MonthCount, error) {
	// The column is selected from a closed enum, never from user input.
	dateColumn := schema.RefName.DateCreated
	if column == StatsModified {
		dateColumn = schema.RefName.LastModified
	}

	query := fmt.Sprintf(`
		SELECT date_trunc('month', n.%s) AS month, count(*)
		FROM %s n
		GROUP BY 1
		ORDER BY 1
	`, dateColumn, schema.RefName.Table)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "counts_by_month")
	}
	defer rows.Close()

	var buckets []MonthCount
	for rows.Next() {
		var bucket MonthCount
		if err := rows.Scan(&bucket.Month, &bucket.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_month_count")
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

func (repository *PostgresRepository) MapPoints(ctx context.Context) ([]MapPoint, error) {
	n := schema.RefName
	l := schema.RefLocation
	query := fmt.Sprintf(`
		SELECT n.%s, n.%s, l.%s, l.%s, l.%s
		FROM %s l
		JOIN %s n ON n.%s = l.%s
		WHERE %s
		ORDER BY n.%s ASC, l.%s ASC
	`,
		n.NameID, n.Name, l.Latitude, l.Longitude, l.Status,
		l.Table,
		n.Table, n.ID, l.NameID,
		visibleCondition(),
		n.Name, l.Status,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "map_points")
	}
	defer rows.Close()

	var points []MapPoint
	for rows.Next() {
		var point MapPoint
		var status int
		if err := rows.Scan(&point.NameID, &point.Name, &point.Latitude, &point.Longitude, &status); err != nil {
			return nil, dberr.Wrap(err, "scan_map_point")
		}
		point.Current = status == 0
		points = append(points, point)
	}

	return points, nil
}
