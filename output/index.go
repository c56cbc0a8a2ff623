package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/maruel/natural"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"guidec/guide"
)

const schema = `
CREATE TABLE sections (
	code        TEXT PRIMARY KEY,
	toc_order   INTEGER,
	kind        TEXT NOT NULL,
	title       TEXT NOT NULL,
	title_jp    TEXT,
	subtitle    TEXT,
	parent_code TEXT,
	location    TEXT
);
CREATE TABLE items (
	id       TEXT PRIMARY KEY,
	name_raw TEXT NOT NULL,
	name_en  TEXT,
	name_jp  TEXT,
	category TEXT NOT NULL
);
CREATE TABLE occurrences (
	item_id TEXT NOT NULL,
	seq     INTEGER NOT NULL,
	code    TEXT NOT NULL,
	kind    TEXT NOT NULL,
	detail  TEXT NOT NULL,
	PRIMARY KEY (item_id, seq)
);
CREATE TABLE shop_items (
	code    TEXT NOT NULL,
	shop    TEXT NOT NULL,
	seq     INTEGER NOT NULL,
	item_id TEXT NOT NULL,
	price   INTEGER,
	notes   TEXT
);
CREATE INDEX occurrences_code ON occurrences(code);
CREATE INDEX shop_items_item ON shop_items(item_id);
`

// WriteIndex replaces SQLite database at path with sections, items, their
// occurrences and shop listings of the document. Everything is written in a
// single transaction.
func WriteIndex(doc *guide.Document, path string) (err error) {
	if doc == nil {
		return fmt.Errorf("nothing to index")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create index directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to remove old index: %w", err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return fmt.Errorf("unable to open index: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close index: %w", cerr)
		}
	}()

	release := sqlitex.Save(conn)
	defer release(&err)

	if err = sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("unable to create index schema: %w", err)
	}
	if err = indexItems(conn, doc); err != nil {
		return err
	}
	return indexSections(conn, doc)
}

func indexSections(conn *sqlite.Conn, doc *guide.Document) error {
	order := make(map[string]int, len(doc.TOC))
	for _, t := range doc.TOC {
		order[t.Code] = t.Order
	}
	parents := make(map[string]string, len(doc.TOC))
	for _, t := range doc.TOC {
		if t.ParentCode != "" {
			parents[t.Code] = t.ParentCode
		}
	}

	codes := make([]string, 0, len(doc.Entries))
	for code := range doc.Entries {
		codes = append(codes, code)
	}
	sort.Sort(natural.StringSlice(codes))

	for _, code := range codes {
		e := doc.Entries[code]

		var tocOrder any
		if o, ok := order[code]; ok {
			tocOrder = o
		}
		err := sqlitex.Execute(conn,
			`INSERT INTO sections (code, toc_order, kind, title, title_jp, subtitle, parent_code, location) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{
				code, tocOrder, string(e.Kind), e.Titles.Primary.Display(),
				nullable(e.Titles.Primary.Jp), nullable(e.Titles.Subtitle),
				nullable(parents[code]), nullable(e.Location),
			}})
		if err != nil {
			return fmt.Errorf("unable to index section %s: %w", code, err)
		}

		for _, shop := range e.Shops {
			for i, it := range shop.Items {
				var price any
				if it.Price != nil {
					price = *it.Price
				}
				err := sqlitex.Execute(conn,
					`INSERT INTO shop_items (code, shop, seq, item_id, price, notes) VALUES (?, ?, ?, ?, ?, ?)`,
					&sqlitex.ExecOptions{Args: []any{code, shop.Name, i, it.ItemID, price, nullable(it.Notes)}})
				if err != nil {
					return fmt.Errorf("unable to index shop %q in section %s: %w", shop.Name, code, err)
				}
			}
		}
	}
	return nil
}

func indexItems(conn *sqlite.Conn, doc *guide.Document) error {
	ids := make([]string, 0, len(doc.Items))
	for id := range doc.Items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		rec := doc.Items[id]
		err := sqlitex.Execute(conn,
			`INSERT INTO items (id, name_raw, name_en, name_jp, category) VALUES (?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{id, rec.Name.Raw, nullable(rec.Name.En), nullable(rec.Name.Jp), string(rec.Category)}})
		if err != nil {
			return fmt.Errorf("unable to index item %s: %w", id, err)
		}
		for i, occ := range rec.Occurrences {
			err := sqlitex.Execute(conn,
				`INSERT INTO occurrences (item_id, seq, code, kind, detail) VALUES (?, ?, ?, ?, ?)`,
				&sqlitex.ExecOptions{Args: []any{id, i, occ.Code, string(occ.Kind), occ.Detail}})
			if err != nil {
				return fmt.Errorf("unable to index occurrence of %s: %w", id, err)
			}
		}
	}
	return nil
}

// nullable stores empty strings as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
