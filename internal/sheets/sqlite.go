package sheets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/ohhell/internal/common/uuid"
)

// DefaultWorksheetTitle is the worksheet every new spreadsheet starts with
const DefaultWorksheetTitle = "Sheet1"

const (
	defaultRows = 1000
	defaultCols = 26
)

var sqliteSchema = `CREATE TABLE IF NOT EXISTS spreadsheets (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS worksheets (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  spreadsheet_id TEXT NOT NULL,
  title TEXT NOT NULL,
  position INTEGER NOT NULL,
  row_count INTEGER NOT NULL,
  col_count INTEGER NOT NULL,
  UNIQUE (spreadsheet_id, title)
);

CREATE TABLE IF NOT EXISTS cells (
  worksheet_id INTEGER NOT NULL,
  row_num INTEGER NOT NULL,
  col_num INTEGER NOT NULL,
  value TEXT NOT NULL,
  PRIMARY KEY (worksheet_id, row_num, col_num)
);

CREATE TABLE IF NOT EXISTS layout (
  worksheet_id INTEGER NOT NULL,
  kind TEXT NOT NULL,
  spec TEXT NOT NULL
);`

// SQLiteConfig holds configuration for the local workbook
type SQLiteConfig struct {
	// Path of the database file, ":memory:" for a throwaway workbook
	Path string

	// UUID generates spreadsheet IDs
	UUID uuid.UUID
}

// SQLite is a local workbook stored in a SQLite database. It stands in for
// the spreadsheet service offline and in tests.
type SQLite struct {
	db   *sqlx.DB
	uuid uuid.UUID
}

type worksheetRow struct {
	ID            int64  `db:"id"`
	SpreadsheetID string `db:"spreadsheet_id"`
	Title         string `db:"title"`
	Position      int    `db:"position"`
	RowCount      int    `db:"row_count"`
	ColCount      int    `db:"col_count"`
}

func (w worksheetRow) toWorksheet() Worksheet {
	return Worksheet{
		ID:       w.ID,
		Title:    w.Title,
		Index:    w.Position,
		RowCount: w.RowCount,
		ColCount: w.ColCount,
	}
}

type cellRow struct {
	Row   int    `db:"row_num"`
	Col   int    `db:"col_num"`
	Value string `db:"value"`
}

// NewSQLite opens the workbook database and creates its tables
func NewSQLite(cfg *SQLiteConfig) (*SQLite, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}

	db, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite workbook: %w", err)
	}

	// One connection keeps ":memory:" a single database and serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create workbook schema: %w", err)
	}

	return &SQLite{
		db:   db,
		uuid: cfg.UUID,
	}, nil
}

// Close releases the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

// EnsureSpreadsheet creates a spreadsheet with a fixed ID unless it exists
func (s *SQLite) EnsureSpreadsheet(ctx context.Context, id, title string) (*Spreadsheet, error) {
	var existing Spreadsheet
	err := s.db.QueryRowxContext(ctx, `SELECT id, title FROM spreadsheets WHERE id = ?`, id).Scan(&existing.ID, &existing.Title)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, s.fail("get spreadsheet", err)
	}
	return s.createSpreadsheet(ctx, id, title)
}

func (s *SQLite) ListSpreadsheets(ctx context.Context) ([]Spreadsheet, error) {
	var rows []struct {
		ID    string `db:"id"`
		Title string `db:"title"`
	}
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, title FROM spreadsheets ORDER BY rowid`); err != nil {
		return nil, s.fail("list spreadsheets", err)
	}

	spreadsheets := make([]Spreadsheet, 0, len(rows))
	for _, r := range rows {
		spreadsheets = append(spreadsheets, Spreadsheet{ID: r.ID, Title: r.Title})
	}
	return spreadsheets, nil
}

func (s *SQLite) CreateSpreadsheet(ctx context.Context, title string) (*Spreadsheet, error) {
	return s.createSpreadsheet(ctx, s.uuid.NewUUID(), title)
}

func (s *SQLite) createSpreadsheet(ctx context.Context, id, title string) (*Spreadsheet, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.fail("begin", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO spreadsheets (id, title) VALUES (?, ?)`, id, title); err != nil {
		return nil, s.fail("create spreadsheet", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO worksheets (spreadsheet_id, title, position, row_count, col_count) VALUES (?, ?, 0, ?, ?)`,
		id, DefaultWorksheetTitle, defaultRows, defaultCols); err != nil {
		return nil, s.fail("create default worksheet", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, s.fail("commit", err)
	}

	return &Spreadsheet{ID: id, Title: title}, nil
}

func (s *SQLite) ListWorksheets(ctx context.Context, spreadsheetID string) ([]Worksheet, error) {
	if err := s.requireSpreadsheet(ctx, s.db, spreadsheetID); err != nil {
		return nil, err
	}

	var rows []worksheetRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, spreadsheet_id, title, position, row_count, col_count
		 FROM worksheets WHERE spreadsheet_id = ? ORDER BY position, id`, spreadsheetID); err != nil {
		return nil, s.fail("list worksheets", err)
	}

	worksheets := make([]Worksheet, 0, len(rows))
	for _, r := range rows {
		worksheets = append(worksheets, r.toWorksheet())
	}
	return worksheets, nil
}

func (s *SQLite) AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, cols int) (*Worksheet, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.fail("begin", err)
	}
	defer tx.Rollback()

	ws, err := s.insertWorksheet(ctx, tx, spreadsheetID, title, rows, cols)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, s.fail("commit", err)
	}
	return ws, nil
}

func (s *SQLite) insertWorksheet(ctx context.Context, tx *sqlx.Tx, spreadsheetID, title string, rows, cols int) (*Worksheet, error) {
	if err := s.requireSpreadsheet(ctx, tx, spreadsheetID); err != nil {
		return nil, err
	}

	var taken int
	if err := tx.GetContext(ctx, &taken,
		`SELECT COUNT(*) FROM worksheets WHERE spreadsheet_id = ? AND title = ?`, spreadsheetID, title); err != nil {
		return nil, s.fail("check worksheet title", err)
	}
	if taken > 0 {
		return nil, fmt.Errorf("worksheet %q: %w", title, ErrAlreadyExists)
	}

	var position int
	if err := tx.GetContext(ctx, &position,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM worksheets WHERE spreadsheet_id = ?`, spreadsheetID); err != nil {
		return nil, s.fail("next worksheet position", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO worksheets (spreadsheet_id, title, position, row_count, col_count) VALUES (?, ?, ?, ?, ?)`,
		spreadsheetID, title, position, rows, cols)
	if err != nil {
		return nil, s.fail("add worksheet", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, s.fail("add worksheet", err)
	}

	return &Worksheet{
		ID:       id,
		Title:    title,
		Index:    position,
		RowCount: rows,
		ColCount: cols,
	}, nil
}

func (s *SQLite) RenameWorksheet(ctx context.Context, spreadsheetID string, worksheetID int64, title string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return s.fail("begin", err)
	}
	defer tx.Rollback()

	if _, err := s.worksheetByID(ctx, tx, spreadsheetID, worksheetID); err != nil {
		return err
	}

	var taken int
	if err := tx.GetContext(ctx, &taken,
		`SELECT COUNT(*) FROM worksheets WHERE spreadsheet_id = ? AND title = ? AND id != ?`,
		spreadsheetID, title, worksheetID); err != nil {
		return s.fail("check worksheet title", err)
	}
	if taken > 0 {
		return fmt.Errorf("worksheet %q: %w", title, ErrAlreadyExists)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE worksheets SET title = ? WHERE id = ?`, title, worksheetID); err != nil {
		return s.fail("rename worksheet", err)
	}

	if err := tx.Commit(); err != nil {
		return s.fail("commit", err)
	}
	return nil
}

func (s *SQLite) DuplicateWorksheet(ctx context.Context, spreadsheetID string, sourceID int64, title string) (*Worksheet, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.fail("begin", err)
	}
	defer tx.Rollback()

	source, err := s.worksheetByID(ctx, tx, spreadsheetID, sourceID)
	if err != nil {
		return nil, err
	}

	ws, err := s.insertWorksheet(ctx, tx, spreadsheetID, title, source.RowCount, source.ColCount)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cells (worksheet_id, row_num, col_num, value) SELECT ?, row_num, col_num, value FROM cells WHERE worksheet_id = ?`,
		ws.ID, sourceID); err != nil {
		return nil, s.fail("copy cells", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO layout (worksheet_id, kind, spec) SELECT ?, kind, spec FROM layout WHERE worksheet_id = ? ORDER BY rowid`,
		ws.ID, sourceID); err != nil {
		return nil, s.fail("copy layout", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, s.fail("commit", err)
	}
	return ws, nil
}

func (s *SQLite) GetValues(ctx context.Context, spreadsheetID string, rng Range) ([][]string, error) {
	ws, err := s.worksheetByTitle(ctx, s.db, spreadsheetID, rng.Sheet)
	if err != nil {
		return nil, err
	}

	rng = normalize(rng)
	query := `SELECT row_num, col_num, value FROM cells WHERE worksheet_id = ? AND row_num >= ? AND col_num >= ?`
	args := []any{ws.ID, rng.StartRow, rng.StartCol}
	if rng.EndRow > 0 {
		query += ` AND row_num <= ?`
		args = append(args, rng.EndRow)
	}
	if rng.EndCol > 0 {
		query += ` AND col_num <= ?`
		args = append(args, rng.EndCol)
	}
	query += ` ORDER BY row_num, col_num`

	var cells []cellRow
	if err := s.db.SelectContext(ctx, &cells, query, args...); err != nil {
		return nil, s.fail("get values", err)
	}

	if len(cells) == 0 {
		return [][]string{}, nil
	}

	lastRow := cells[len(cells)-1].Row
	values := make([][]string, lastRow-rng.StartRow+1)
	for i := range values {
		values[i] = []string{}
	}
	for _, c := range cells {
		r := c.Row - rng.StartRow
		offset := c.Col - rng.StartCol
		for len(values[r]) <= offset {
			values[r] = append(values[r], "")
		}
		values[r][offset] = c.Value
	}
	return values, nil
}

func (s *SQLite) UpdateValues(ctx context.Context, spreadsheetID string, rng Range, values [][]any) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return s.fail("begin", err)
	}
	defer tx.Rollback()

	ws, err := s.worksheetByTitle(ctx, tx, spreadsheetID, rng.Sheet)
	if err != nil {
		return err
	}

	if err := s.writeCells(ctx, tx, ws, normalize(rng), values); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return s.fail("commit", err)
	}
	return nil
}

func (s *SQLite) AppendValues(ctx context.Context, spreadsheetID string, rng Range, values [][]any) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return s.fail("begin", err)
	}
	defer tx.Rollback()

	ws, err := s.worksheetByTitle(ctx, tx, spreadsheetID, rng.Sheet)
	if err != nil {
		return err
	}

	rng = normalize(rng)
	var lastRow int
	if err := tx.GetContext(ctx, &lastRow,
		`SELECT COALESCE(MAX(row_num), 0) FROM cells WHERE worksheet_id = ?`, ws.ID); err != nil {
		return s.fail("find last row", err)
	}
	if lastRow+1 > rng.StartRow {
		rng.StartRow = lastRow + 1
	}

	if err := s.writeCells(ctx, tx, ws, rng, values); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return s.fail("commit", err)
	}
	return nil
}

func (s *SQLite) writeCells(ctx context.Context, tx *sqlx.Tx, ws *worksheetRow, rng Range, values [][]any) error {
	maxRow, maxCol := ws.RowCount, ws.ColCount
	for i, row := range values {
		for j, v := range row {
			if v == nil {
				continue
			}
			r, c := rng.StartRow+i, rng.StartCol+j
			value := cellString(v)
			if value == "" {
				if _, err := tx.ExecContext(ctx,
					`DELETE FROM cells WHERE worksheet_id = ? AND row_num = ? AND col_num = ?`, ws.ID, r, c); err != nil {
					return s.fail("clear cell", err)
				}
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO cells (worksheet_id, row_num, col_num, value) VALUES (?, ?, ?, ?)
				 ON CONFLICT (worksheet_id, row_num, col_num) DO UPDATE SET value = excluded.value`,
				ws.ID, r, c, value); err != nil {
				return s.fail("write cell", err)
			}
			maxRow = max(maxRow, r)
			maxCol = max(maxCol, c)
		}
	}

	if maxRow != ws.RowCount || maxCol != ws.ColCount {
		if _, err := tx.ExecContext(ctx,
			`UPDATE worksheets SET row_count = ?, col_count = ? WHERE id = ?`, maxRow, maxCol, ws.ID); err != nil {
			return s.fail("grow worksheet", err)
		}
	}
	return nil
}

func (s *SQLite) DeleteRows(ctx context.Context, spreadsheetID string, worksheetID int64, start, end int) error {
	if start < 0 || end <= start {
		return fmt.Errorf("delete rows [%d, %d): %w", start, end, ErrUnexpectedShape)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return s.fail("begin", err)
	}
	defer tx.Rollback()

	ws, err := s.worksheetByID(ctx, tx, spreadsheetID, worksheetID)
	if err != nil {
		return err
	}

	first, last, count := start+1, end, end-start
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cells WHERE worksheet_id = ? AND row_num BETWEEN ? AND ?`, worksheetID, first, last); err != nil {
		return s.fail("delete rows", err)
	}

	// Shift through negative rows so no intermediate state collides with the
	// primary key.
	if _, err := tx.ExecContext(ctx,
		`UPDATE cells SET row_num = -(row_num - ?) WHERE worksheet_id = ? AND row_num > ?`, count, worksheetID, last); err != nil {
		return s.fail("shift rows", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE cells SET row_num = -row_num WHERE worksheet_id = ? AND row_num < 0`, worksheetID); err != nil {
		return s.fail("shift rows", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE worksheets SET row_count = ? WHERE id = ?`, max(ws.RowCount-count, 1), worksheetID); err != nil {
		return s.fail("shrink worksheet", err)
	}

	if err := tx.Commit(); err != nil {
		return s.fail("commit", err)
	}
	return nil
}

// layoutRecord is the stored form of a Directive
type layoutRecord struct {
	Kind string `db:"kind"`
	Spec string `db:"spec"`
}

const (
	layoutMerge       = "merge"
	layoutFormat      = "format"
	layoutColumnWidth = "column_width"
)

func (s *SQLite) ApplyLayout(ctx context.Context, spreadsheetID string, worksheetID int64, directives []Directive) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return s.fail("begin", err)
	}
	defer tx.Rollback()

	if _, err := s.worksheetByID(ctx, tx, spreadsheetID, worksheetID); err != nil {
		return err
	}

	for _, d := range directives {
		var kind string
		switch d.(type) {
		case Merge:
			kind = layoutMerge
		case Format:
			kind = layoutFormat
		case ColumnWidth:
			kind = layoutColumnWidth
		default:
			return fmt.Errorf("layout directive %T: %w", d, ErrUnexpectedShape)
		}

		spec, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to marshal layout directive: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO layout (worksheet_id, kind, spec) VALUES (?, ?, ?)`, worksheetID, kind, string(spec)); err != nil {
			return s.fail("apply layout", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.fail("commit", err)
	}
	return nil
}

// Layout returns the directives applied to a worksheet, in order
func (s *SQLite) Layout(ctx context.Context, spreadsheetID string, worksheetID int64) ([]Directive, error) {
	if _, err := s.worksheetByID(ctx, s.db, spreadsheetID, worksheetID); err != nil {
		return nil, err
	}

	var records []layoutRecord
	if err := s.db.SelectContext(ctx, &records,
		`SELECT kind, spec FROM layout WHERE worksheet_id = ? ORDER BY rowid`, worksheetID); err != nil {
		return nil, s.fail("get layout", err)
	}

	directives := make([]Directive, 0, len(records))
	for _, rec := range records {
		var d Directive
		var err error
		switch rec.Kind {
		case layoutMerge:
			var m Merge
			err = json.Unmarshal([]byte(rec.Spec), &m)
			d = m
		case layoutFormat:
			var f Format
			err = json.Unmarshal([]byte(rec.Spec), &f)
			d = f
		case layoutColumnWidth:
			var w ColumnWidth
			err = json.Unmarshal([]byte(rec.Spec), &w)
			d = w
		default:
			err = fmt.Errorf("layout kind %q: %w", rec.Kind, ErrUnexpectedShape)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal layout directive: %w", err)
		}
		directives = append(directives, d)
	}
	return directives, nil
}

type queryer interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

func (s *SQLite) requireSpreadsheet(ctx context.Context, q queryer, spreadsheetID string) error {
	var count int
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM spreadsheets WHERE id = ?`, spreadsheetID); err != nil {
		return s.fail("get spreadsheet", err)
	}
	if count == 0 {
		return fmt.Errorf("spreadsheet %q: %w", spreadsheetID, ErrNotFound)
	}
	return nil
}

func (s *SQLite) worksheetByTitle(ctx context.Context, q queryer, spreadsheetID, title string) (*worksheetRow, error) {
	if err := s.requireSpreadsheet(ctx, q, spreadsheetID); err != nil {
		return nil, err
	}

	var ws worksheetRow
	var err error
	if title == "" {
		err = q.GetContext(ctx, &ws,
			`SELECT id, spreadsheet_id, title, position, row_count, col_count
			 FROM worksheets WHERE spreadsheet_id = ? ORDER BY position, id LIMIT 1`, spreadsheetID)
	} else {
		err = q.GetContext(ctx, &ws,
			`SELECT id, spreadsheet_id, title, position, row_count, col_count
			 FROM worksheets WHERE spreadsheet_id = ? AND title = ?`, spreadsheetID, title)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("worksheet %q: %w", title, ErrNotFound)
	}
	if err != nil {
		return nil, s.fail("get worksheet", err)
	}
	return &ws, nil
}

func (s *SQLite) worksheetByID(ctx context.Context, q queryer, spreadsheetID string, worksheetID int64) (*worksheetRow, error) {
	if err := s.requireSpreadsheet(ctx, q, spreadsheetID); err != nil {
		return nil, err
	}

	var ws worksheetRow
	err := q.GetContext(ctx, &ws,
		`SELECT id, spreadsheet_id, title, position, row_count, col_count
		 FROM worksheets WHERE spreadsheet_id = ? AND id = ?`, spreadsheetID, worksheetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("worksheet %d: %w", worksheetID, ErrNotFound)
	}
	if err != nil {
		return nil, s.fail("get worksheet", err)
	}
	return &ws, nil
}

// fail classifies a database error as the workbook being unavailable
func (s *SQLite) fail(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

func normalize(rng Range) Range {
	if rng.StartRow < 1 {
		rng.StartRow = 1
	}
	if rng.StartCol < 1 {
		rng.StartCol = 1
	}
	return rng
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
