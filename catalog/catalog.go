// Package catalog persists assembled cue sheets to a SQLite
// database so a library can be scanned once and queried later.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/rabidaudio/cuetools/cue"
	"github.com/rabidaudio/cuetools/tracklist"
)

// Store wraps the catalog database.
type Store struct {
	db *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS sheets (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		path        TEXT NOT NULL UNIQUE,
		catalog     TEXT NOT NULL DEFAULT '',
		performer   TEXT NOT NULL DEFAULT '',
		title       TEXT NOT NULL DEFAULT '',
		genre       TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL DEFAULT '',
		discid      TEXT NOT NULL DEFAULT '',
		comment     TEXT NOT NULL DEFAULT '',
		discnumber  INTEGER NOT NULL DEFAULT 0,
		totaldiscs  INTEGER NOT NULL DEFAULT 0,
		scanned_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS tracks (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		sheet_id        INTEGER NOT NULL REFERENCES sheets(id) ON DELETE CASCADE,
		file_name       TEXT NOT NULL,
		file_format     TEXT NOT NULL,
		number          INTEGER NOT NULL,
		type            TEXT NOT NULL,
		title           TEXT NOT NULL DEFAULT '',
		performer       TEXT NOT NULL DEFAULT '',
		isrc            TEXT NOT NULL DEFAULT '',
		duration_frames INTEGER
	);
	`

// Open opens (creating if necessary) the catalog database at path.
// Use ":memory:" for a throwaway in-memory catalog.
func Open(path string) (*Store, error) {
	// the pragma must ride on the DSN: database/sql pools connections
	// and PRAGMA foreign_keys is per-connection state
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("catalog: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the tracklist assembled from the sheet at path,
// replacing any previous scan of the same path.
func (s *Store) Save(path string, list *tracklist.Tracklist) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sheets WHERE path = ?", path); err != nil {
		return fmt.Errorf("catalog: clear previous scan of %s: %w", path, err)
	}

	res, err := tx.Exec(`INSERT INTO sheets
		(path, catalog, performer, title, genre, date, discid, comment, discnumber, totaldiscs, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		path, list.Catalog, list.Performer, list.Title, list.Genre, list.Date,
		list.DiscID, list.Comment, list.DiscNumber, list.TotalDiscs, time.Now())
	if err != nil {
		return fmt.Errorf("catalog: insert sheet %s: %w", path, err)
	}
	sheetID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO tracks
		(sheet_id, file_name, file_format, number, type, title, performer, isrc, duration_frames)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, file := range list.Files {
		for _, track := range file.Tracks {
			var duration sql.NullInt64
			if track.Duration != nil {
				duration = sql.NullInt64{Int64: track.Duration.TotalFrames(), Valid: true}
			}
			_, err := stmt.Exec(sheetID, file.Name, file.Format.String(),
				track.Number, track.Type.String(), track.Title, track.Performer,
				track.ISRC, duration)
			if err != nil {
				return fmt.Errorf("catalog: insert track %d of %s: %w", track.Number, path, err)
			}
		}
	}
	return tx.Commit()
}

// Sheet is a catalog row describing one scanned cue sheet.
type Sheet struct {
	ID         int64
	Path       string
	Performer  string
	Title      string
	Genre      string
	Date       string
	DiscNumber int
	TotalDiscs int
	ScannedAt  time.Time
}

// Sheets lists all scanned sheets, most recently scanned first.
func (s *Store) Sheets() ([]Sheet, error) {
	rows, err := s.db.Query(`SELECT id, path, performer, title, genre, date, discnumber, totaldiscs, scanned_at
		FROM sheets ORDER BY scanned_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []Sheet
	for rows.Next() {
		var sh Sheet
		if err := rows.Scan(&sh.ID, &sh.Path, &sh.Performer, &sh.Title, &sh.Genre,
			&sh.Date, &sh.DiscNumber, &sh.TotalDiscs, &sh.ScannedAt); err != nil {
			return nil, err
		}
		sheets = append(sheets, sh)
	}
	return sheets, rows.Err()
}

// TrackRow is a catalog row describing one track of a sheet.
type TrackRow struct {
	FileName  string
	Number    uint32
	Title     string
	Performer string
	ISRC      string
	Duration  *cue.Time // nil when no duration could be inferred
}

// Tracks lists the tracks of one sheet in source order.
func (s *Store) Tracks(sheetID int64) ([]TrackRow, error) {
	rows, err := s.db.Query(`SELECT file_name, number, title, performer, isrc, duration_frames
		FROM tracks WHERE sheet_id = ? ORDER BY id`, sheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []TrackRow
	for rows.Next() {
		var tr TrackRow
		var duration sql.NullInt64
		if err := rows.Scan(&tr.FileName, &tr.Number, &tr.Title, &tr.Performer, &tr.ISRC, &duration); err != nil {
			return nil, err
		}
		if duration.Valid {
			d := cue.TimeFromFrames(duration.Int64)
			tr.Duration = &d
		}
		tracks = append(tracks, tr)
	}
	return tracks, rows.Err()
}
