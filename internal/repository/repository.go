package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"jobSearchTracker/internal/database"
	"jobSearchTracker/internal/logging"
	"jobSearchTracker/internal/models"
	"jobSearchTracker/internal/timeutil"
)

// Entity is the shape a persisted type must have: a pointer to a struct
// embedding models.Record, with db tags matching its table's columns.
type Entity[T any] interface {
	*T
	Table() string
	Columns() []string
	Base() *models.Record
}

// datedEntity is implemented by entities with user supplied timestamp columns.
type datedEntity interface {
	Dates() map[string]timeutil.Timestamp
}

// Repository maps one entity type to its table. It holds no connection;
// every operation takes the caller's.
type Repository[T any, P Entity[T]] struct {
	table  string
	logger *logging.Logger

	selectColumns string
	insertQuery   string
	updateQuery   string
}

// New builds the repository for entity type T
func New[T any, P Entity[T]](logger *logging.Logger) *Repository[T, P] {
	if logger == nil {
		logger = logging.Nop()
	}

	var zero T
	shape := P(&zero)
	table := shape.Table()
	columns := shape.Columns()

	selected := append([]string{"id"}, columns...)
	selected = append(selected, "created_date", "last_updated", "hide")

	writable := append(append([]string{}, columns...), "hide")
	binds := make([]string, len(writable))
	sets := make([]string, len(writable))
	for i, column := range writable {
		binds[i] = ":" + column
		sets[i] = column + " = :" + column
	}

	return &Repository[T, P]{
		table:         table,
		logger:        logger,
		selectColumns: strings.Join(selected, ", "),
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, strings.Join(writable, ", "), strings.Join(binds, ", ")),
		updateQuery: fmt.Sprintf("UPDATE %s SET %s WHERE id = :id",
			table, strings.Join(sets, ", ")),
	}
}

// Table returns the table name the repository writes to
func (r *Repository[T, P]) Table() string {
	return r.table
}

// Get loads the row with the given id
func (r *Repository[T, P]) Get(ctx context.Context, q sqlx.QueryerContext, id int64) (P, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", r.selectColumns, r.table)
	rows, err := q.QueryxContext(ctx, query, id)
	if err != nil {
		return nil, database.StorageError(fmt.Sprintf("failed to query %s %d", r.table, id), err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, database.StorageError(fmt.Sprintf("failed to read %s %d", r.table, id), err)
		}
		return nil, database.StorageError(fmt.Sprintf("%s %d not found", r.table, id), sql.ErrNoRows)
	}

	return r.scan(rows)
}

// All returns every row, hidden ones included, ordered by id
func (r *Repository[T, P]) All(ctx context.Context, q sqlx.QueryerContext) ([]P, error) {
	return r.list(ctx, q, fmt.Sprintf("SELECT %s FROM %s ORDER BY id", r.selectColumns, r.table))
}

// Visible returns the rows that are not hidden, ordered by id
func (r *Repository[T, P]) Visible(ctx context.Context, q sqlx.QueryerContext) ([]P, error) {
	return r.list(ctx, q, fmt.Sprintf("SELECT %s FROM %s WHERE hide = 0 ORDER BY id", r.selectColumns, r.table))
}

// Count returns the number of rows, optionally only the visible ones
func (r *Repository[T, P]) Count(ctx context.Context, q sqlx.QueryerContext, visibleOnly bool) (int, error) {
	query := "SELECT count(*) FROM " + r.table
	if visibleOnly {
		query += " WHERE hide = 0"
	}
	var count int
	if err := sqlx.GetContext(ctx, q, &count, query); err != nil {
		return 0, database.StorageError(fmt.Sprintf("failed to count %s", r.table), err)
	}
	return count, nil
}

// Insert persists a new entity and refreshes it with the id and timestamps
// assigned by the store. The write and the re-read share one transaction, and
// e is only modified once it has committed.
func (r *Repository[T, P]) Insert(ctx context.Context, db *sqlx.DB, e P) error {
	if id := e.Base().ID; id != nil {
		return database.InvalidStateError(fmt.Sprintf("%s already saved with id %d", r.table, *id))
	}

	var fresh P
	err := database.WithTransaction(ctx, db, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, r.insertQuery, e)
		if err != nil {
			return database.StorageError(fmt.Sprintf("failed to insert into %s", r.table), err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return database.StorageError(fmt.Sprintf("failed to read id inserted into %s", r.table), err)
		}
		fresh, err = r.Get(ctx, tx, id)
		return err
	})
	if err != nil {
		return err
	}

	*e = *fresh
	r.logger.WithField("table", r.table).WithField("id", *e.Base().ID).Debug("Inserted row")
	return nil
}

// Update writes every mutable column of a saved entity and refreshes it
// from the stored row. Updating an unsaved entity or a row that no longer
// exists is an invalid state.
func (r *Repository[T, P]) Update(ctx context.Context, db *sqlx.DB, e P) error {
	idPtr := e.Base().ID
	if idPtr == nil {
		return database.InvalidStateError(fmt.Sprintf("cannot update unsaved %s row", r.table))
	}
	id := *idPtr

	var fresh P
	err := database.WithTransaction(ctx, db, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, r.updateQuery, e)
		if err != nil {
			return database.StorageError(fmt.Sprintf("failed to update %s %d", r.table, id), err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return database.StorageError(fmt.Sprintf("failed to read rows affected for %s %d", r.table, id), err)
		}
		if affected == 0 {
			return database.InvalidStateError(fmt.Sprintf("%s %d does not exist", r.table, id))
		}
		fresh, err = r.Get(ctx, tx, id)
		return err
	})
	if err != nil {
		return err
	}

	*e = *fresh
	r.logger.WithField("table", r.table).WithField("id", id).Debug("Updated row")
	return nil
}

// SetHidden soft-deletes (or restores) a saved entity
func (r *Repository[T, P]) SetHidden(ctx context.Context, db *sqlx.DB, e P, hidden bool) error {
	base := e.Base()
	previous := base.Hide
	base.Hide = models.Flag(hidden)
	if err := r.Update(ctx, db, e); err != nil {
		base.Hide = previous
		return err
	}
	return nil
}

func (r *Repository[T, P]) list(ctx context.Context, q sqlx.QueryerContext, query string) ([]P, error) {
	rows, err := q.QueryxContext(ctx, query)
	if err != nil {
		return nil, database.StorageError(fmt.Sprintf("failed to query %s", r.table), err)
	}
	defer rows.Close()

	entities := []P{}
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, database.StorageError(fmt.Sprintf("failed to read %s", r.table), err)
	}
	return entities, nil
}

func (r *Repository[T, P]) scan(rows *sqlx.Rows) (P, error) {
	var row T
	e := P(&row)
	if err := rows.StructScan(e); err != nil {
		return nil, database.ConversionError(fmt.Sprintf("failed to convert %s row", r.table), err)
	}
	r.reportMalformed(e)
	return e, nil
}

// reportMalformed logs stored timestamps that could not be parsed; the
// entity keeps them as absent values.
func (r *Repository[T, P]) reportMalformed(e P) {
	base := e.Base()
	dates := map[string]timeutil.Timestamp{
		"created_date": base.CreatedDate,
		"last_updated": base.LastUpdated,
	}
	if dated, ok := any(e).(datedEntity); ok {
		for column, ts := range dated.Dates() {
			dates[column] = ts
		}
	}

	for column, ts := range dates {
		if !ts.Malformed() {
			continue
		}
		var id int64
		if base.ID != nil {
			id = *base.ID
		}
		r.logger.WithFields(map[string]interface{}{
			"table":  r.table,
			"id":     id,
			"column": column,
			"raw":    ts.Raw,
		}).Warn("Unparseable timestamp treated as absent")
	}
}
