package main

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcqa/internal/sink"
)

const cliLibrary = `
templates:
  - name: ct_4x4
    index_1: "0.01 0.02 0.04 0.08"
    index_2: "0.01 0.02 0.04 0.08"
    index_3: "0.0005 0.001 0.002 0.004"
cells:
  - name: SYNC2QD1
    pins: [D, CP, Q]
    outputs: Q
    constraint_template: ct_4x4
    arcs:
      - type: hold_rising
        pin: D
        related_pin: CP
        vector: RRx
      - type: setup_rising
        pin: D
        related_pin: CP
        when: SE
        vector: RRx
`

const cliDecks = `
rules:
  - cell: "*SYNC*"
    arc_type: "hold_*"
    deck: "sync_hold_{when}.sp"
`

func writeInputs(t *testing.T) (dir, lib, decks string) {
	t.Helper()

	dir = t.TempDir()
	lib = filepath.Join(dir, "lib.yaml")
	decks = filepath.Join(dir, "decks.yaml")

	require.NoError(t, os.WriteFile(lib, []byte(cliLibrary), 0o644))
	require.NoError(t, os.WriteFile(decks, []byte(cliDecks), 0o644))

	return dir, lib, decks
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestExtract_YAML(t *testing.T) {
	dir, lib, decks := writeInputs(t)
	outPath := filepath.Join(dir, "arcs.yaml")

	out, err := execute(t, "extract", "--model", lib, "--decks", decks, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "arcs identified: 2\n")
	assert.Contains(t, out, "skipped skip_rule: 1\n")

	report, err := sink.ReadYAML(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, report.ArcsIdentified)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "RR0", report.Records[0].Vector)
	assert.Equal(t, "RR1", report.Records[1].Vector)
	assert.Equal(t, "sync_hold_no_condition.sp", report.Records[0].Deck)
}

func TestExtract_SQLiteFromConfig(t *testing.T) {
	dir, lib, decks := writeInputs(t)
	dbPath := filepath.Join(dir, "arcs.db")
	cfgPath := filepath.Join(dir, "arcqa.yaml")

	require.NoError(t, os.WriteFile(cfgPath, []byte(`
cells: ["*SYNC2*Q*"]
output:
  format: sqlite
  path: `+dbPath+`
logging:
  level: warn
  encoding: console
`), 0o644))

	out, err := execute(t, "--config", cfgPath, "extract", "--model", lib, "--decks", decks)
	require.NoError(t, err)
	assert.Contains(t, out, "arcs identified: 2\n")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM records WHERE deck = 'sync_hold_no_condition.sp'").Scan(&n))
	assert.Equal(t, 2, n)
}

func TestExtract_Errors(t *testing.T) {
	dir, lib, decks := writeInputs(t)

	_, err := execute(t, "extract", "--model", lib)
	require.Error(t, err)

	_, err = execute(t, "extract", "--model", filepath.Join(dir, "missing.yaml"), "--decks", decks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read library file")

	_, err = execute(t, "extract", "--model", lib, "--decks", decks, "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_output_format")
}

func TestCheck(t *testing.T) {
	dir, lib, decks := writeInputs(t)

	out, err := execute(t, "check", "--model", lib, "--decks", decks)
	require.NoError(t, err)
	assert.Contains(t, out, "0 error(s)")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
cells:
  - name: DFQD1
    pins: [D, CP, Q]
    constraint_template: ct_missing
    arcs:
      - {type: setup_rising, pin: D, related_pin: CLK, vector: RRx}
`), 0o644))

	out, err = execute(t, "check", "--model", bad)
	require.Error(t, err)
	assert.Contains(t, out, "unknown_pin")
	assert.Contains(t, out, "undefined_template")
}
