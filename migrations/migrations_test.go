package migrations

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestReadMigrationsSortsAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"002_second.sql": {Data: []byte("SELECT 2;")},
		"001_first.sql":  {Data: []byte("SELECT 1;")},
		"notes.txt":      {Data: []byte("ignored")},
		"bad_name.sql":   {Data: []byte("ignored")},
	}

	got, err := ReadMigrations(fsys)
	if err != nil {
		t.Fatal(err)
	}
	want := []Migration{
		{Version: 1, Name: "first", SQL: "SELECT 1;"},
		{Version: 2, Name: "second", SQL: "SELECT 2;"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMigrationsRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 1;")},
	}
	if _, err := ReadMigrations(fsys); err == nil {
		t.Fatal("expected duplicate version error")
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Sub(embedded, "sql")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ReadMigrations(files)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 migrations, got %d", len(got))
	}
	for i, m := range got {
		if m.Version != i+1 {
			t.Errorf("expected version %d, got %d", i+1, m.Version)
		}
		if !strings.Contains(m.SQL, "CREATE TABLE") {
			t.Errorf("migration %s has no CREATE TABLE", m.Name)
		}
	}
}
