package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const exportsTable = "exports"

var exportColumns = []any{
	"id", "kind", "format", "destination", "trigger", "status",
	"file_name", "location", "row_count", "byte_count", "error",
	"created_at", "completed_at",
}

// Ensure ExportsTable implements IExportTable at compile time.
var _ IExportTable = (*ExportsTable)(nil)

// ExportsTable provides access to the exports table.
type ExportsTable struct {
	exec bob.Executor
	now  func() time.Time
}

func NewExportsTable(db *sql.DB) *ExportsTable {
	return &ExportsTable{exec: bob.NewDB(db), now: time.Now}
}

// Insert records a pending export and returns its generated ID.
func (t *ExportsTable) Insert(ctx context.Context, create *ExportCreate) (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into(exportsTable, "id", "kind", "format", "destination", "trigger", "status", "created_at"),
		im.Values(
			psql.Arg(id),
			psql.Arg(create.Kind),
			psql.Arg(create.Format),
			psql.Arg(create.Destination),
			psql.Arg(create.Trigger),
			psql.Arg(ExportStatusPending),
			psql.Arg(t.now().UTC()),
		),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindByID retrieves an export by primary key.
func (t *ExportsTable) FindByID(ctx context.Context, id uuid.UUID) (*Export, error) {
	q := psql.Select(
		sm.Columns(exportColumns...),
		sm.From(exportsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Export]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns exports newest first. A positive Limit fetches one extra row
// so callers can tell whether another page exists.
func (t *ExportsTable) List(ctx context.Context, filter *ExportFilter) ([]*Export, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(exportColumns...),
		sm.From(exportsTable),
	}
	if filter != nil {
		var where []bob.Expression
		if filter.Kind != "" {
			where = append(where, psql.Quote("kind").EQ(psql.Arg(filter.Kind)))
		}
		if filter.MaxCreationTime != nil {
			where = append(where, psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime)))
		}
		if len(where) > 0 {
			queryMods = append(queryMods, sm.Where(psql.And(where...)))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Export]())
	if err != nil {
		return nil, err
	}
	result := make([]*Export, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *ExportsTable) MarkRunning(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table(exportsTable),
		um.SetCol("status").ToArg(ExportStatusRunning),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.execUpdate(ctx, q)
}

// Finish stores the outcome of an export job and stamps completed_at.
func (t *ExportsTable) Finish(ctx context.Context, id uuid.UUID, result *ExportResult) error {
	q := psql.Update(
		um.Table(exportsTable),
		um.SetCol("status").ToArg(result.Status),
		um.SetCol("file_name").ToArg(result.FileName),
		um.SetCol("location").ToArg(result.Location),
		um.SetCol("row_count").ToArg(result.Rows),
		um.SetCol("byte_count").ToArg(result.Bytes),
		um.SetCol("error").ToArg(result.Error),
		um.SetCol("completed_at").ToArg(t.now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.execUpdate(ctx, q)
}

func (t *ExportsTable) execUpdate(ctx context.Context, q bob.Query) error {
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExportNotFound
	}
	return nil
}
