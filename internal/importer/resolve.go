// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer

import (
	"context"
	"errors"

	"github.com/daleelbalady/daleel/internal/platform/dberr"
)

// Clause is one ordered lookup strategy for an entity. It returns
// (nil, nil) when nothing matches; any error aborts resolution.
type Clause[T any] func(ctx context.Context) (*T, error)

// Lookup adapts a repository getter, whose miss is the dberr not-found
// sentinel, into a Clause.
func Lookup[T any](fn func(ctx context.Context) (*T, error)) Clause[T] {
	return func(ctx context.Context) (*T, error) {
		entity, err := fn(ctx)
		if err != nil {
			if errors.Is(err, dberr.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return entity, nil
	}
}

// FirstOrCreate tries each clause in order and returns the first match.
// When every clause misses it calls create exactly once. The bool result
// reports whether a new entity was created, so callers can keep their
// created/skipped counters honest.
func FirstOrCreate[T any](ctx context.Context, clauses []Clause[T], create func(context.Context) (*T, error)) (*T, bool, error) {
	for _, clause := range clauses {
		entity, err := clause(ctx)
		if err != nil {
			return nil, false, err
		}
		if entity != nil {
			return entity, false, nil
		}
	}

	entity, err := create(ctx)
	if err != nil {
		return nil, false, err
	}
	return entity, true, nil
}
