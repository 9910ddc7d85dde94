package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"billdict/internal"
)

// DB is a write-once sqlite rendering of the classification dictionary,
// produced fresh each run for consumers that prefer SQL over csv/json.
// The pipeline never reads it back.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS bills (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  state TEXT NOT NULL,
  billNumber TEXT,
  year INTEGER NOT NULL,
  stateFull TEXT NOT NULL,
  billNumberRaw TEXT,
  status TEXT,
  statusDetail TEXT,
  issuesRaw TEXT,
  issueCategories TEXT NOT NULL,
  label TEXT NOT NULL,
  source TEXT NOT NULL,
  legiscanBillId INTEGER,
  legiscanTextUrl TEXT
);
CREATE INDEX IF NOT EXISTS idx_bills_state ON bills(state);
CREATE INDEX IF NOT EXISTS idx_bills_billNumber ON bills(billNumber);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := d.conn.Exec(schema)
	return err
}

// ReplaceRecords rewrites the bills table with the given records, in order.
func (d *DB) ReplaceRecords(records []internal.BillRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM bills`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO bills (state, billNumber, year, stateFull, billNumberRaw, status, statusDetail, issuesRaw, issueCategories, label, source, legiscanBillId, legiscanTextUrl)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		categoriesJSON, _ := json.Marshal(rec.IssueCategories)
		if _, err := stmt.Exec(
			rec.State, rec.BillNumber, rec.Year, rec.StateFull, rec.BillNumberRaw,
			rec.Status, rec.StatusDetail, rec.IssuesRaw, string(categoriesJSON),
			rec.Label, rec.Source, rec.LegiscanBillID, rec.LegiscanTextURL,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

// WriteDictionary is the one-call export used by the CLI: records plus
// provenance metadata (input path and generation time).
func (d *DB) WriteDictionary(records []internal.BillRecord, inputPath string) error {
	if err := d.ReplaceRecords(records); err != nil {
		return err
	}
	if err := d.SetMetadata("source", internal.SourceTag); err != nil {
		return err
	}
	if err := d.SetMetadata("inputPath", inputPath); err != nil {
		return err
	}
	return d.SetMetadata("generatedAt", time.Now().UTC().Format(time.RFC3339))
}

func (d *DB) CountBills() (int, error) {
	var n int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM bills`).Scan(&n)
	return n, err
}
