package output

import (
	"os"
	"path/filepath"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func openIndex(t *testing.T, path string) *sqlite.Conn {
	t.Helper()
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	if err != nil {
		t.Fatalf("unable to open index: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func countRows(t *testing.T, conn *sqlite.Conn, table string) int {
	t.Helper()
	var n int
	err := sqlitex.Execute(conn, "SELECT count(*) FROM "+table, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			n = stmt.ColumnInt(0)
			return nil
		}})
	if err != nil {
		t.Fatalf("unable to count %s: %v", table, err)
	}
	return n
}

func TestWriteIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index", "guide.db")

	// second run replaces the file instead of failing on existing tables
	for i := 0; i < 2; i++ {
		if err := WriteIndex(sampleDocument(), path); err != nil {
			t.Fatalf("WriteIndex() run %d error = %v", i, err)
		}
	}

	conn := openIndex(t, path)
	for table, want := range map[string]int{"sections": 2, "items": 2, "occurrences": 3, "shop_items": 2} {
		if got := countRows(t, conn, table); got != want {
			t.Errorf("%s rows = %d, want %d", table, got, want)
		}
	}

	t.Run("sections", func(t *testing.T) {
		type row struct {
			title, parent, location string
			order                   int
		}
		got := map[string]row{}
		err := sqlitex.Execute(conn, `SELECT code, title, ifnull(parent_code, ''), ifnull(location, ''), toc_order FROM sections`,
			&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
				got[stmt.ColumnText(0)] = row{stmt.ColumnText(1), stmt.ColumnText(2), stmt.ColumnText(3), stmt.ColumnInt(4)}
				return nil
			}})
		if err != nil {
			t.Fatal(err)
		}
		if r := got["wt01a"]; r.title != "Rabanastre" || r.parent != "" || r.order != 0 {
			t.Errorf("wt01a = %+v", r)
		}
		if r := got["wt01b"]; r.title != "Lowtown" || r.parent != "wt01a" || r.location != "Rabanastre <Town>" || r.order != 1 {
			t.Errorf("wt01b = %+v", r)
		}
	})

	t.Run("shop prices", func(t *testing.T) {
		var ids []string
		var priced int
		err := sqlitex.Execute(conn, `SELECT item_id, price IS NOT NULL FROM shop_items WHERE code = ? ORDER BY seq`,
			&sqlitex.ExecOptions{
				Args: []any{"wt01a"},
				ResultFunc: func(stmt *sqlite.Stmt) error {
					ids = append(ids, stmt.ColumnText(0))
					priced += stmt.ColumnInt(1)
					return nil
				}})
		if err != nil {
			t.Fatal(err)
		}
		if len(ids) != 2 || ids[0] != "potion" || ids[1] != "eye-drops" {
			t.Errorf("shop items = %v, want [potion eye-drops]", ids)
		}
		if priced != 1 {
			t.Errorf("priced items = %d, want 1", priced)
		}
	})

	t.Run("occurrences", func(t *testing.T) {
		var kinds []string
		err := sqlitex.Execute(conn, `SELECT kind FROM occurrences WHERE item_id = ? ORDER BY seq`,
			&sqlitex.ExecOptions{
				Args: []any{"potion"},
				ResultFunc: func(stmt *sqlite.Stmt) error {
					kinds = append(kinds, stmt.ColumnText(0))
					return nil
				}})
		if err != nil {
			t.Fatal(err)
		}
		if len(kinds) != 2 || kinds[0] != "shop" || kinds[1] != "narrative" {
			t.Errorf("potion occurrences = %v, want [shop narrative]", kinds)
		}
	})
}

func TestWriteIndex_Errors(t *testing.T) {
	if err := WriteIndex(nil, filepath.Join(t.TempDir(), "x.db")); err == nil {
		t.Error("WriteIndex(nil) expected error")
	}

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteIndex(sampleDocument(), filepath.Join(blocker, "x.db")); err == nil {
		t.Error("WriteIndex() under a regular file expected error")
	}
}
