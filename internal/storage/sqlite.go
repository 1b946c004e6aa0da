package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS channel_uploads (
	channel_id TEXT PRIMARY KEY,
	video_id   TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

type sqliteStore struct {
	conn *sql.DB
}

// New opens (or creates) the state database at dbPath.
func New(dbPath string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping state database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &sqliteStore{conn: conn}, nil
}

func (s *sqliteStore) Close() error {
	return s.conn.Close()
}

// LastUpload returns the last seen upload for the channel, or an empty
// string when the channel has never been seen.
func (s *sqliteStore) LastUpload(ctx context.Context, channelID string) (string, error) {
	var videoID string
	err := s.conn.QueryRowContext(ctx,
		"SELECT video_id FROM channel_uploads WHERE channel_id = ?", channelID,
	).Scan(&videoID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query last upload: %w", err)
	}
	return videoID, nil
}

// SetLastUpload records the last seen upload for the channel. A single
// UPSERT keeps the read-modify-write atomic per channel.
func (s *sqliteStore) SetLastUpload(ctx context.Context, channelID, videoID string) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO channel_uploads (channel_id, video_id, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(channel_id) DO UPDATE SET
			video_id = excluded.video_id,
			updated_at = excluded.updated_at`,
		channelID, videoID,
	)
	if err != nil {
		return fmt.Errorf("record last upload: %w", err)
	}
	return nil
}
