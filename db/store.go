// Package db persists annotation timestamps as their wire maps. Two
// backends are provided: Redis, for shared deployments, and SQLite, for a
// local file.
package db

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/cbsinteractive/annotate/annotation"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("annotation not found")
)

// Entry is a stored timestamp and its ID.
type Entry struct {
	ID        string               `json:"id"`
	Timestamp annotation.Timestamp `json:"timestamp"`
}

// Store saves timestamps under caller-chosen IDs.
type Store interface {
	Put(ctx context.Context, id string, ts annotation.Timestamp) error
	Get(ctx context.Context, id string) (annotation.Timestamp, error)
	Delete(ctx context.Context, id string) error
	// List returns every entry, ordered by timestamp.
	List(ctx context.Context) ([]Entry, error)
	Close() error
}

// Add stores ts under a new random ID and returns the ID.
func Add(ctx context.Context, s Store, ts annotation.Timestamp) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "generating annotation id")
	}
	if err := s.Put(ctx, id.String(), ts); err != nil {
		return "", err
	}
	return id.String(), nil
}

type overlapper interface {
	Overlapping(ctx context.Context, w annotation.Timestamp) ([]Entry, error)
}

// Overlapping returns the entries of s that share time with w. Stores that
// can filter on their own are asked to.
func Overlapping(ctx context.Context, s Store, w annotation.Timestamp) ([]Entry, error) {
	if o, ok := s.(overlapper); ok {
		return o.Overlapping(ctx, w)
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(all, w), nil
}

func filter(entries []Entry, w annotation.Timestamp) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Timestamp.OverlapsTime(w) {
			out = append(out, e)
		}
	}
	return out
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Timestamp, entries[j].Timestamp
		if a.Less(b) || b.Less(a) {
			return a.Less(b)
		}
		return entries[i].ID < entries[j].ID
	})
}

func encode(ts annotation.Timestamp) (string, error) {
	if ts.Kind() == "" {
		return "", errors.New("cannot store an empty timestamp")
	}
	data, err := json.Marshal(ts.Wire())
	if err != nil {
		return "", errors.Wrap(err, "encoding timestamp")
	}
	return string(data), nil
}
