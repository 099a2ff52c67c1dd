package database

import (
	"fmt"
	"log"
	"sort"
)

// Migrator is the narrow slice of gorm.Migrator the validator needs.
// Keeping it an interface lets the migration replay be tested without a
// live database.
type Migrator interface {
	HasTable(dst interface{}) bool
	HasColumn(dst interface{}, field string) bool
	AddColumn(dst interface{}, field string) error
}

// ColumnMigration declares one additive schema change: "as of Version,
// Table must carry Column". Column names the struct field on Model so
// the migrator can derive the SQL type.
type ColumnMigration struct {
	Version int
	Table   string
	Model   interface{}
	Column  string
}

// ValidateSchema replays the declared migration list against the live
// schema. It only ever adds columns: existing columns are left alone,
// unexpected extra columns are ignored, and a missing table is skipped
// entirely (table creation belongs to AutoMigrate, not here). Run it on
// every startup; it is idempotent.
func ValidateSchema(m Migrator, migrations []ColumnMigration) error {
	ordered := make([]ColumnMigration, len(migrations))
	copy(ordered, migrations)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Version < ordered[j].Version
	})

	for _, mig := range ordered {
		if !m.HasTable(mig.Table) {
			log.Printf("[WARN] Table %s does not exist yet - deferring to AutoMigrate", mig.Table)
			continue
		}
		if m.HasColumn(mig.Model, mig.Column) {
			continue
		}

		log.Printf("[INFO] Schema drift on %s: adding missing column for field %s (v%d)", mig.Table, mig.Column, mig.Version)
		if err := m.AddColumn(mig.Model, mig.Column); err != nil {
			return fmt.Errorf("add column %s.%s (v%d): %w", mig.Table, mig.Column, mig.Version, err)
		}
	}

	return nil
}
