package database

import (
	"errors"
	"fmt"
	"testing"
)

type fakeMigrator struct {
	tables    map[string]bool
	columns   map[string]bool // "table.Field"
	added     []string
	addErrFor string
}

func (f *fakeMigrator) key(dst interface{}, field string) string {
	return fmt.Sprintf("%v.%s", dst, field)
}

func (f *fakeMigrator) HasTable(dst interface{}) bool {
	name, _ := dst.(string)
	return f.tables[name]
}

func (f *fakeMigrator) HasColumn(dst interface{}, field string) bool {
	return f.columns[f.key(dst, field)]
}

func (f *fakeMigrator) AddColumn(dst interface{}, field string) error {
	k := f.key(dst, field)
	if field == f.addErrFor {
		return errors.New("permission denied")
	}
	f.columns[k] = true
	f.added = append(f.added, field)
	return nil
}

type jobsModel struct{}

func TestValidateSchemaAddsMissingColumns(t *testing.T) {
	m := &fakeMigrator{
		tables: map[string]bool{"summary_jobs": true},
		columns: map[string]bool{
			"{}.ChunkCount": true, // already present
		},
	}

	migrations := []ColumnMigration{
		{Version: 3, Table: "summary_jobs", Model: jobsModel{}, Column: "Metadata"},
		{Version: 2, Table: "summary_jobs", Model: jobsModel{}, Column: "ChunkCount"},
		{Version: 2, Table: "summary_jobs", Model: jobsModel{}, Column: "ProcessingTime"},
	}

	if err := ValidateSchema(m, migrations); err != nil {
		t.Fatalf("ValidateSchema returned error: %v", err)
	}

	// Missing columns added in version order, existing one untouched
	want := []string{"ProcessingTime", "Metadata"}
	if len(m.added) != len(want) {
		t.Fatalf("added = %v, want %v", m.added, want)
	}
	for i, col := range want {
		if m.added[i] != col {
			t.Errorf("added[%d] = %s, want %s", i, m.added[i], col)
		}
	}
}

func TestValidateSchemaSkipsMissingTable(t *testing.T) {
	m := &fakeMigrator{
		tables:  map[string]bool{},
		columns: map[string]bool{},
	}

	migrations := []ColumnMigration{
		{Version: 2, Table: "summary_jobs", Model: jobsModel{}, Column: "ChunkCount"},
	}

	if err := ValidateSchema(m, migrations); err != nil {
		t.Fatalf("ValidateSchema returned error: %v", err)
	}
	if len(m.added) != 0 {
		t.Errorf("added = %v, want none for a missing table", m.added)
	}
}

func TestValidateSchemaIdempotent(t *testing.T) {
	m := &fakeMigrator{
		tables:  map[string]bool{"summary_jobs": true},
		columns: map[string]bool{},
	}
	migrations := []ColumnMigration{
		{Version: 2, Table: "summary_jobs", Model: jobsModel{}, Column: "ChunkCount"},
	}

	if err := ValidateSchema(m, migrations); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := ValidateSchema(m, migrations); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(m.added) != 1 {
		t.Errorf("column added %d times, want once", len(m.added))
	}
}

func TestValidateSchemaPropagatesAddError(t *testing.T) {
	m := &fakeMigrator{
		tables:    map[string]bool{"summary_jobs": true},
		columns:   map[string]bool{},
		addErrFor: "Metadata",
	}
	migrations := []ColumnMigration{
		{Version: 3, Table: "summary_jobs", Model: jobsModel{}, Column: "Metadata"},
	}

	if err := ValidateSchema(m, migrations); err == nil {
		t.Fatal("expected error from AddColumn")
	}
}
