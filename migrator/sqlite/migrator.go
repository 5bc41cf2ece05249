package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var migrations embed.FS

// Migrate applies the embedded reminder and acknowledgement schema. Versions
// already recorded in the darwin table are skipped, so it runs on every start.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(migrations, "sql"); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
