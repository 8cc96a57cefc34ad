package sink

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcqa/internal/model"
	"arcqa/internal/record"
)

func testReport() Report {
	point := func(i int) *int { return &i }

	base := record.Record{
		Cell:          "SDFQD1",
		ArcType:       model.ArcSetupRising,
		TemplateType:  model.OverrideConstraint,
		Pin:           "D",
		PinDir:        "rise",
		RelatedPin:    "CP",
		RelatedPinDir: "rise",
		When:          "notSE",
		RawWhen:       "!SE",
		Pinlist:       []string{"D", "CP", "SE", "SI", "Q"},
		Outputs:       []string{"Q"},
		Index1:        []string{"0.1", "0.2"},
		Index2:        []string{"0.1", "0.2"},
		Deck:          "setup_rising.sp",
		Vector:        "RRxxx",
	}

	recs := make([]record.Record, 0, 4)

	for i := 1; i <= 3; i++ {
		r := base
		r.OutputLoad = []string{"", "0.002", "0.004", "0.008"}[i]
		r.TablePoint = point(i)
		recs = append(recs, r)
	}

	recs = append(recs, record.Record{
		Cell:         "SYNC2QD1",
		ArcType:      model.ArcHoldRising,
		TemplateType: model.OverrideConstraint,
		Pin:          "D",
		RelatedPin:   "CP",
		When:         "no_condition",
		Pinlist:      []string{"D", "CP", "Q"},
		Index1:       []string{"0.01", "0.02"},
		Index2:       []string{"0.01", "0.02"},
		OutputLoad:   "0.002",
		SidePins:     []record.SidePinState{{Pin: "Q", State: "high"}},
		Deck:         "hold_rising.sp",
		Vector:       "RR1",
	})

	return Report{ArcsIdentified: 2, Records: recs}
}

func TestNew(t *testing.T) {
	w, err := New(FormatYAML, "out.yaml")
	require.NoError(t, err)
	assert.IsType(t, &YAMLWriter{}, w)

	w, err = New(FormatSQLite, "out.db")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteWriter{}, w)

	_, err = New("csv", "out.csv")
	require.Error(t, err)
}

func TestYAMLWriter_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "arcs.yaml")
	want := testReport()

	require.NoError(t, (&YAMLWriter{Path: p}).Write(context.Background(), want))

	got, err := ReadYAML(p)
	require.NoError(t, err)

	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(got.Records[0]))
	}
}

func TestSQLiteWriter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "arcs.db")
	w := &SQLiteWriter{Path: p}
	ctx := context.Background()

	require.NoError(t, w.Write(ctx, testReport()))
	require.NoError(t, w.Write(ctx, Report{}))

	db, err := sql.Open("sqlite", p)
	require.NoError(t, err)
	defer db.Close()

	var runs int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs))
	assert.Equal(t, 2, runs)

	var identified, count int
	require.NoError(t, db.QueryRow(
		"SELECT arcs_identified, record_count FROM runs WHERE id = 1").Scan(&identified, &count))
	assert.Equal(t, 2, identified)
	assert.Equal(t, 4, count)

	rows, err := db.Query("SELECT seq, output_load, table_point FROM records WHERE run_id = 1 AND cell = 'SDFQD1' ORDER BY seq")
	require.NoError(t, err)
	defer rows.Close()

	var loads []string
	for rows.Next() {
		var (
			seq   int
			load  string
			point sql.NullInt64
		)
		require.NoError(t, rows.Scan(&seq, &load, &point))
		assert.True(t, point.Valid)
		assert.Equal(t, int64(seq+1), point.Int64)
		loads = append(loads, load)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"0.002", "0.004", "0.008"}, loads)

	var (
		arcType, when, sidePins string
		point                   sql.NullInt64
		rawWhen                 sql.NullString
	)
	require.NoError(t, db.QueryRow(
		"SELECT arc_type, when_id, raw_when, side_pins, table_point FROM records WHERE run_id = 1 AND seq = 3").
		Scan(&arcType, &when, &rawWhen, &sidePins, &point))
	assert.Equal(t, "hold_rising", arcType)
	assert.Equal(t, "no_condition", when)
	assert.False(t, rawWhen.Valid)
	assert.Equal(t, "Q=high", sidePins)
	assert.False(t, point.Valid)
}
