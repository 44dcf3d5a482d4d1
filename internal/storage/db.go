package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"ferrex/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
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
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  code TEXT,
  description TEXT,
  price TEXT,
  pricesJson TEXT,
  quantity TEXT,
  measurement TEXT,
  vatRate INTEGER,
  brand TEXT,
  category TEXT,
  sheet TEXT NOT NULL,
  supplier TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_code ON products(code);
CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  sourceDir TEXT NOT NULL,
  supplier TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  statsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// ReplaceProducts swaps the stored product set of one supplier for the
// outcome of a fresh extraction run.
func (d *DB) ReplaceProducts(supplier string, products []internal.ProductRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products WHERE supplier = ?`, supplier); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO products (code, description, price, pricesJson, quantity, measurement, vatRate, brand, category, sheet, supplier)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		var pricesJSON *string
		if len(p.Prices) > 0 {
			blob, _ := json.Marshal(p.Prices)
			s := string(blob)
			pricesJSON = &s
		}
		if _, err := stmt.Exec(
			p.Code, p.Description, p.Price, pricesJSON, p.Quantity,
			p.Measurement, p.VatRate, p.Brand, p.Category,
			p.SourceSheet, p.SourceSupplier,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListProducts returns stored products, optionally restricted to one
// supplier. Code-bearing records come first in code order, code-less last.
func (d *DB) ListProducts(supplier string) ([]internal.ProductRecord, error) {
	query := `
SELECT id, code, description, price, pricesJson, quantity, measurement, vatRate, brand, category, sheet, supplier
FROM products`
	args := []any{}
	if supplier != "" {
		query += ` WHERE supplier = ?`
		args = append(args, supplier)
	}
	query += ` ORDER BY code IS NULL, code ASC, id ASC`

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ProductRecord
	for rows.Next() {
		var p internal.ProductRecord
		var pricesJSON *string
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Description, &p.Price, &pricesJSON, &p.Quantity,
			&p.Measurement, &p.VatRate, &p.Brand, &p.Category,
			&p.SourceSheet, &p.SourceSupplier,
		); err != nil {
			return nil, err
		}
		if pricesJSON != nil {
			_ = json.Unmarshal([]byte(*pricesJSON), &p.Prices)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (d *DB) InsertRun(traceID, sourceDir, supplier string, counts map[string]int, stats internal.QualityStats) error {
	countsJSON, _ := json.Marshal(counts)
	statsJSON, _ := json.Marshal(stats)
	_, err := d.conn.Exec(`
INSERT INTO runs (traceId, sourceDir, supplier, countsJson, statsJson) VALUES (?, ?, ?, ?, ?)
`, traceID, sourceDir, supplier, string(countsJSON), string(statsJSON))
	return err
}

// LastRunStats returns the stats of the most recent run for a supplier, or
// nil when the supplier has never been processed.
func (d *DB) LastRunStats(supplier string) (*internal.QualityStats, error) {
	var statsJSON string
	err := d.conn.QueryRow(`
SELECT statsJson FROM runs WHERE supplier = ? ORDER BY id DESC LIMIT 1
`, supplier).Scan(&statsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats internal.QualityStats
	if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
