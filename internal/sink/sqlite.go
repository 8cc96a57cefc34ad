package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"arcqa/internal/record"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	arcs_identified INTEGER NOT NULL,
	record_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	seq INTEGER NOT NULL,
	cell TEXT NOT NULL,
	arc_type TEXT NOT NULL,
	template_type TEXT NOT NULL,
	pin TEXT NOT NULL,
	pin_dir TEXT,
	related_pin TEXT NOT NULL,
	related_pin_dir TEXT,
	when_id TEXT NOT NULL,
	raw_when TEXT,
	probes TEXT,
	pinlist TEXT NOT NULL,
	outputs TEXT,
	index_1 TEXT,
	index_2 TEXT,
	output_load TEXT NOT NULL,
	table_point INTEGER,
	side_pins TEXT,
	deck TEXT NOT NULL,
	metric TEXT,
	metric_threshold TEXT,
	vector TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);
CREATE INDEX IF NOT EXISTS idx_records_cell ON records(cell);
CREATE INDEX IF NOT EXISTS idx_records_deck ON records(deck);
`

const insertRecord = `
INSERT INTO records (
	run_id, seq, cell, arc_type, template_type,
	pin, pin_dir, related_pin, related_pin_dir,
	when_id, raw_when, probes, pinlist, outputs,
	index_1, index_2, output_load, table_point, side_pins,
	deck, metric, metric_threshold, vector
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLiteWriter appends each report as a new run in a SQLite database.
type SQLiteWriter struct {
	Path string
}

// Write implements Writer. The run and its records are committed together.
func (w *SQLiteWriter) Write(ctx context.Context, r Report) error {
	db, err := sql.Open("sqlite", w.Path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", w.Path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (arcs_identified, record_count) VALUES (?, ?)",
		r.ArcsIdentified, len(r.Records))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertRecord)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for i := range r.Records {
		rec := &r.Records[i]

		var point sql.NullInt64
		if rec.TablePoint != nil {
			point = sql.NullInt64{Int64: int64(*rec.TablePoint), Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			runID, i, rec.Cell, rec.ArcType.String(), string(rec.TemplateType),
			rec.Pin, nullable(rec.PinDir), rec.RelatedPin, nullable(rec.RelatedPinDir),
			rec.When, nullable(rec.RawWhen), nullable(join(rec.Probes)), join(rec.Pinlist), nullable(join(rec.Outputs)),
			nullable(join(rec.Index1)), nullable(join(rec.Index2)), rec.OutputLoad, point, nullable(sidePins(rec.SidePins)),
			rec.Deck, nullable(rec.Metric), nullable(rec.MetricThreshold), rec.Vector,
		); err != nil {
			return fmt.Errorf("insert record %d (%s %s): %w", i, rec.Cell, rec.ArcType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func join(s []string) string {
	return strings.Join(s, " ")
}

// sidePins renders states as "SE=high SI=low".
func sidePins(states []record.SidePinState) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.Pin + "=" + s.State
	}

	return strings.Join(parts, " ")
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
