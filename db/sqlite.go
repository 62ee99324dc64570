package db

import (
	"context"
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	"github.com/cbsinteractive/annotate/annotation"
	"github.com/cbsinteractive/annotate/wire"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

//go:embed sql/create_table.sql
var createTableSQL string

//go:embed sql/create_index.sql
var createIndexSQL string

//go:embed sql/upsert_annotation.sql
var upsertAnnotationSQL string

//go:embed sql/select_annotation.sql
var selectAnnotationSQL string

//go:embed sql/delete_annotation.sql
var deleteAnnotationSQL string

//go:embed sql/select_annotations.sql
var selectAnnotationsSQL string

//go:embed sql/select_overlapping.sql
var selectOverlappingSQL string

// SQLite keeps timestamps in a single table, with the start and end
// seconds in their own indexed columns for window queries.
type SQLite struct {
	db  *sql.DB
	dec annotation.Decoder
	log logrus.FieldLogger
}

// OpenSQLite opens or creates the database at path. Parent directories are
// created if they don't exist.
func OpenSQLite(path string, dec annotation.Decoder, log logrus.FieldLogger) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating %s", dir)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, dec: dec, log: log}, nil
}

// migrate is idempotent.
func migrate(db *sql.DB) error {
	for _, stmt := range []string{createTableSQL, createIndexSQL} {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "migrating annotations table")
		}
	}
	return nil
}

func (s *SQLite) Put(ctx context.Context, id string, ts annotation.Timestamp) error {
	data, err := encode(ts)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, upsertAnnotationSQL,
		id, string(ts.Kind()), ts.Start().Seconds(), ts.End().Seconds(), data)
	if err != nil {
		return errors.Wrapf(err, "saving annotation %s", id)
	}
	s.log.WithFields(logrus.Fields{"id": id, "kind": ts.Kind()}).Debug("annotation saved")
	return nil
}

func (s *SQLite) Get(ctx context.Context, id string) (annotation.Timestamp, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, selectAnnotationSQL, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return annotation.Timestamp{}, ErrNotFound
	} else if err != nil {
		return annotation.Timestamp{}, errors.Wrapf(err, "loading annotation %s", id)
	}
	return s.decode(id, payload)
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, deleteAnnotationSQL, id)
	if err != nil {
		return errors.Wrapf(err, "deleting annotation %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "deleting annotation %s", id)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) List(ctx context.Context) ([]Entry, error) {
	return s.query(ctx, selectAnnotationsSQL)
}

// Overlapping selects candidates by their indexed window and then applies
// the exact overlap rule of annotation.Timestamp.
func (s *SQLite) Overlapping(ctx context.Context, w annotation.Timestamp) ([]Entry, error) {
	entries, err := s.query(ctx, selectOverlappingSQL, w.End().Seconds(), w.Start().Seconds())
	if err != nil {
		return nil, err
	}
	return filter(entries, w), nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) query(ctx context.Context, q string, args ...interface{}) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing annotations")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, errors.Wrap(err, "listing annotations")
		}
		ts, err := s.decode(id, payload)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: id, Timestamp: ts})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "listing annotations")
	}
	sortEntries(entries)
	return entries, nil
}

func (s *SQLite) decode(id, payload string) (annotation.Timestamp, error) {
	m, err := wire.Parse([]byte(payload))
	if err != nil {
		return annotation.Timestamp{}, errors.Wrapf(err, "annotation %s", id)
	}
	ts, err := s.dec.Decode(m)
	if err != nil {
		return annotation.Timestamp{}, errors.Wrapf(err, "annotation %s", id)
	}
	return ts, nil
}
