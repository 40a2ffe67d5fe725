package storage

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	start_fen TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS moves (
	game_id TEXT NOT NULL,
	ply INTEGER NOT NULL,
	move_uci TEXT NOT NULL,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, ply)
);

CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
`

// SQLiteStore keeps games in a SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path and
// initialises the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; SQLite serialises writes anyway
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, path: path}
	if err := s.InitDB(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// InitDB creates the database schema
func (s *SQLiteStore) InitDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return tx.Commit()
}

// CreateGame inserts a new game.
func (s *SQLiteStore) CreateGame(ctx context.Context, rec GameRecord) error {
	now := rec.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO games (game_id, start_fen, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			rec.ID, rec.StartFEN, now, now)
		if err != nil {
			return err
		}
		for i, m := range rec.Moves {
			if err := insertMove(ctx, tx, rec.ID, i+1, m); err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendMove records a move and bumps the game's update time.
func (s *SQLiteStore) AppendMove(ctx context.Context, id string, ply int, uci string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE games SET updated_at = ? WHERE game_id = ?`, time.Now().UTC(), id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
		}
		return insertMove(ctx, tx, id, ply, uci)
	})
}

func insertMove(ctx context.Context, tx *sql.Tx, id string, ply int, uci string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO moves (game_id, ply, move_uci) VALUES (?, ?, ?)`, id, ply, uci)
	return err
}

// LoadGame reads a game and its moves.
func (s *SQLiteStore) LoadGame(ctx context.Context, id string) (GameRecord, error) {
	rec := GameRecord{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT start_fen, created_at, updated_at FROM games WHERE game_id = ?`, id,
	).Scan(&rec.StartFEN, &rec.CreatedAt, &rec.UpdatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return GameRecord{}, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	if err != nil {
		return GameRecord{}, fmt.Errorf("query failed: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT move_uci FROM moves WHERE game_id = ? ORDER BY ply`, id)
	if err != nil {
		return GameRecord{}, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return GameRecord{}, fmt.Errorf("scan failed: %w", err)
		}
		rec.Moves = append(rec.Moves, m)
	}
	return rec, rows.Err()
}

// DeleteGame removes a game and its moves.
func (s *SQLiteStore) DeleteGame(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM moves WHERE game_id = ?`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM games WHERE game_id = ?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
		}
		return nil
	})
}

// ListGames returns stored game ids, oldest first.
func (s *SQLiteStore) ListGames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT game_id FROM games ORDER BY created_at, game_id`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, rolling back on error.
func (s *SQLiteStore) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
