package migration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := logOutput
	logOutput = log.New(&buf, "", 0)
	t.Cleanup(func() { logOutput = orig })
	return &buf
}

func logEvents(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var events []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		events = append(events, entry["event"].(string))
	}
	return events
}

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("schema exists", func(t *testing.T) {
		buf := captureLogs(t)
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err = EnsureMigrated(ctx, db, time.UTC, "db")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, []string{"db_migration_check", "db_migration_skip"}, logEvents(t, buf))
	})

	t.Run("runs every step", func(t *testing.T) {
		buf := captureLogs(t)
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS staff").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_staff_full_name").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_staff_nic_number").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_staff_designation").WillReturnResult(sqlmock.NewResult(0, 0))

		err = EnsureMigrated(ctx, db, time.UTC, "db")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())

		events := logEvents(t, buf)
		assert.Equal(t, "db_migration_success", events[len(events)-1])
	})

	t.Run("step failure aborts", func(t *testing.T) {
		buf := captureLogs(t)
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS staff").WillReturnError(errors.New("permission denied"))

		err = EnsureMigrated(ctx, db, time.UTC, "db")
		assert.ErrorContains(t, err, "migration step create_table_staff failed: permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("sentinel check failure", func(t *testing.T) {
		captureLogs(t)
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").WillReturnError(errors.New("conn reset"))

		err = EnsureMigrated(ctx, db, time.UTC, "db")
		assert.ErrorContains(t, err, "failed to check sentinel table")
	})
}
