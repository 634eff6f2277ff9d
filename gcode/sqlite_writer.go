package gcode

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MovesTable is the table WriteSQLite (re)creates.
const MovesTable = "moves"

// WriteSQLite stores t in the SQLite database at path, replacing any
// previous moves table. seq keeps the input order; nulls stay NULL.
func WriteSQLite(ctx context.Context, path string, t *Table) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DROP TABLE IF EXISTS ` + MovesTable,
		`CREATE TABLE ` + MovesTable + ` (
			seq       INTEGER PRIMARY KEY,
			operation TEXT NOT NULL,
			x         REAL,
			y         REAL,
			z         REAL,
			speed     REAL
		)`,
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("failed to prepare schema: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO `+MovesTable+` (seq, operation, x, y, z, speed) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer insert.Close()

	for i, r := range t.Rows {
		_, err := insert.ExecContext(ctx, i+1, r.Operation,
			r.X.NullFloat64(), r.Y.NullFloat64(), r.Z.NullFloat64(), r.Speed.NullFloat64())
		if err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// ReadSQLite loads a table previously stored by WriteSQLite.
func ReadSQLite(ctx context.Context, path string) (*Table, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT operation, x, y, z, speed FROM `+MovesTable+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	table := &Table{}
	for rows.Next() {
		var r Row
		var x, y, z, speed sql.NullFloat64
		if err := rows.Scan(&r.Operation, &x, &y, &z, &speed); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		r.X, r.Y, r.Z, r.Speed = fromNull(x), fromNull(y), fromNull(z), fromNull(speed)
		table.Rows = append(table.Rows, r)
	}
	return table, rows.Err()
}

func fromNull(n sql.NullFloat64) Cell {
	return Cell{Value: n.Float64, Valid: n.Valid}
}
