package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_staff",
		SQL: `CREATE TABLE IF NOT EXISTS staff (
  id                        UUID             PRIMARY KEY,
  appointment_number        TEXT             NOT NULL UNIQUE,
  full_name                 TEXT             NOT NULL,
  gender                    TEXT             NOT NULL,
  date_of_birth             TEXT             NOT NULL,
  age                       INTEGER          NOT NULL CHECK (age >= 0),
  nic_number                TEXT             NOT NULL,
  marital_status            TEXT             NOT NULL,
  address_line1             TEXT             NOT NULL,
  address_line2             TEXT,
  address_line3             TEXT,
  contact_number            TEXT             NOT NULL,
  email                     TEXT,
  designation               TEXT             NOT NULL,
  date_of_first_appointment TEXT             NOT NULL,
  date_of_retirement        TEXT             NOT NULL,
  increment_date            TEXT             NOT NULL,
  salary_code               TEXT             NOT NULL,
  basic_salary              DOUBLE PRECISION NOT NULL CHECK (basic_salary >= 0),
  increment_amount          DOUBLE PRECISION NOT NULL CHECK (increment_amount >= 0),
  image_path                TEXT,
  created_at                TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at                TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_staff_full_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_staff_full_name ON staff (full_name);`,
	},
	{
		Name: "create_index_staff_nic_number",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_staff_nic_number ON staff (nic_number);`,
	},
	{
		Name: "create_index_staff_designation",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_staff_designation ON staff (designation);`,
	},
}

const sentinelTable = "public.staff"

// EnsureMigrated checks if the 'staff' table exists and runs migrations if it doesn't.
// Every step is logged as one JSON line; the first failing step aborts the run.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()
	base := func(event, status string) map[string]any {
		return map[string]any{
			"component": "database",
			"event":     event,
			"status":    status,
			"db_host":   dbHost,
		}
	}

	logJSON(loc, base("db_migration_check", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists); err != nil {
		entry := base("db_migration_failed", "error")
		entry["error_message"] = fmt.Sprintf("failed to check sentinel table: %v", err)
		entry["duration_ms"] = time.Since(start).Milliseconds()
		logJSON(loc, entry)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		entry := base("db_migration_skip", "success")
		entry["msg"] = "schema already exists, skipping migration"
		entry["duration_ms"] = time.Since(start).Milliseconds()
		logJSON(loc, entry)
		return nil
	}

	logJSON(loc, base("db_migration_start", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			entry := base("db_migration_failed", "error")
			entry["migration_step"] = step.Name
			entry["error_message"] = err.Error()
			entry["duration_ms"] = time.Since(start).Milliseconds()
			entry["step_duration_ms"] = time.Since(stepStart).Milliseconds()
			logJSON(loc, entry)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		entry := base("db_migration_step", "success")
		entry["migration_step"] = step.Name
		entry["step_duration_ms"] = time.Since(stepStart).Milliseconds()
		logJSON(loc, entry)
	}

	entry := base("db_migration_success", "success")
	entry["steps"] = len(steps)
	entry["duration_ms"] = time.Since(start).Milliseconds()
	logJSON(loc, entry)

	return nil
}

// logOutput is swapped in tests.
var logOutput = log.New(os.Stdout, "", 0)

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	logOutput.Println(string(b))
}
