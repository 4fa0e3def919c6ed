package db

import (
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/velmora/aetheria/migrations"
	"gorm.io/gorm"
)

// The profile store migrates itself on open. Migrations are embedded
// forward-only SQL files named <version>_<description>.sql and are recorded
// in schema_migrations. An ALTER TABLE ADD COLUMN statement is skipped when
// the column already exists, so a database bootstrapped from the current
// schema replays the history cleanly.

type migration struct {
	version int
	name    string
	script  string
}

func migrate(database *gorm.DB) error {
	if err := database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	history, err := readMigrations()
	if err != nil {
		return err
	}

	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, entry := range history {
		if applied[strconv.Itoa(entry.version)] {
			continue
		}
		if err := runMigration(database, entry); err != nil {
			return err
		}
	}
	return nil
}

func readMigrations() ([]migration, error) {
	entries, err := fs.ReadDir(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	history := make([]migration, 0, len(entries))
	byVersion := make(map[int]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		version, ok := migrationVersion(name)
		if !ok {
			continue
		}
		if previous, taken := byVersion[version]; taken {
			return nil, fmt.Errorf("migration version %d claimed by both %s and %s", version, previous, name)
		}
		byVersion[version] = name

		script, err := fs.ReadFile(migrations.Files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		history = append(history, migration{version: version, name: name, script: string(script)})
	}

	sort.Slice(history, func(i, j int) bool { return history[i].version < history[j].version })
	return history, nil
}

// migrationVersion extracts the numeric prefix of <version>_<description>.sql.
func migrationVersion(name string) (int, bool) {
	base, ok := strings.CutSuffix(name, ".sql")
	if !ok {
		return 0, false
	}
	prefix, _, ok := strings.Cut(base, "_")
	if !ok {
		return 0, false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return version, true
}

func appliedVersions(database *gorm.DB) (map[string]bool, error) {
	rows := make([]string, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}

	applied := make(map[string]bool, len(rows))
	for _, version := range rows {
		applied[version] = true
	}
	return applied, nil
}

func runMigration(database *gorm.DB, entry migration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		executed := 0
		for _, statement := range strings.Split(entry.script, ";") {
			statement = strings.TrimSpace(statement)
			if statement == "" {
				continue
			}

			if table, column, isAddColumn := alterAddColumnTarget(statement); isAddColumn {
				exists, err := columnExists(tx, table, column)
				if err != nil {
					return fmt.Errorf("inspect %s before %s: %w", table, entry.name, err)
				}
				if exists {
					executed++
					continue
				}
			}

			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("apply %s: %w", entry.name, err)
			}
			executed++
		}
		if executed == 0 {
			return fmt.Errorf("migration %s has no statements", entry.name)
		}

		return tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			strconv.Itoa(entry.version), entry.name,
		).Error
	})
}

// alterAddColumnTarget recognizes the one statement shape that must stay
// idempotent: ALTER TABLE <table> ADD COLUMN <column> ...
func alterAddColumnTarget(statement string) (string, string, bool) {
	fields := strings.Fields(statement)
	if len(fields) < 6 {
		return "", "", false
	}
	if !strings.EqualFold(fields[0], "ALTER") || !strings.EqualFold(fields[1], "TABLE") ||
		!strings.EqualFold(fields[3], "ADD") || !strings.EqualFold(fields[4], "COLUMN") {
		return "", "", false
	}
	return trimIdentifier(fields[2]), trimIdentifier(fields[5]), true
}

func trimIdentifier(raw string) string {
	return strings.Trim(raw, "\"`[]")
}

type tableColumn struct {
	Name string `gorm:"column:name"`
}

func columnExists(database *gorm.DB, table string, column string) (bool, error) {
	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(table, `"`, `""`))

	columns := make([]tableColumn, 0)
	if err := database.Raw(query).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, existing := range columns {
		if strings.EqualFold(existing.Name, column) {
			return true, nil
		}
	}
	return false, nil
}
