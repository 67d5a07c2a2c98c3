// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelbalady/daleel/internal/importer"
	"github.com/daleelbalady/daleel/internal/platform/dberr"
)

type fixture struct {
	ID string
}

/*
TestLookup_TranslatesNotFound verifies that a repository miss becomes a clean
clause miss (nil, nil) while real errors pass through.
*/
func TestLookup_TranslatesNotFound(t *testing.T) {
	ctx := context.Background()

	// 1. The not-found sentinel is a miss, not an error
	clause := importer.Lookup(func(context.Context) (*fixture, error) {
		return nil, dberr.ErrNotFound
	})
	entity, err := clause(ctx)
	assert.NoError(t, err)
	assert.Nil(t, entity)

	// 2. Anything else propagates
	boom := errors.New("connection reset")
	clause = importer.Lookup(func(context.Context) (*fixture, error) {
		return nil, boom
	})
	_, err = clause(ctx)
	assert.ErrorIs(t, err, boom)

	// 3. A hit passes through untouched
	clause = importer.Lookup(func(context.Context) (*fixture, error) {
		return &fixture{ID: "a"}, nil
	})
	entity, err = clause(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", entity.ID)
}

/*
TestFirstOrCreate_ReturnsFirstMatch verifies that clauses run in order, later
clauses are skipped after a hit, and create never runs.
*/
func TestFirstOrCreate_ReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	var secondCalled, createCalled bool

	entity, created, err := importer.FirstOrCreate(ctx,
		[]importer.Clause[fixture]{
			func(context.Context) (*fixture, error) { return nil, nil },
			func(context.Context) (*fixture, error) { return &fixture{ID: "match"}, nil },
			func(context.Context) (*fixture, error) { secondCalled = true; return nil, nil },
		},
		func(context.Context) (*fixture, error) {
			createCalled = true
			return &fixture{ID: "new"}, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "match", entity.ID)
	assert.False(t, created)
	assert.False(t, secondCalled)
	assert.False(t, createCalled)
}

/*
TestFirstOrCreate_CreatesOnMiss verifies that create runs exactly once when
every clause misses, and the created flag reports it.
*/
func TestFirstOrCreate_CreatesOnMiss(t *testing.T) {
	ctx := context.Background()
	createCalls := 0

	entity, created, err := importer.FirstOrCreate(ctx,
		[]importer.Clause[fixture]{
			func(context.Context) (*fixture, error) { return nil, nil },
		},
		func(context.Context) (*fixture, error) {
			createCalls++
			return &fixture{ID: "new"}, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "new", entity.ID)
	assert.True(t, created)
	assert.Equal(t, 1, createCalls)
}

/*
TestFirstOrCreate_StopsOnClauseError verifies that a failing clause aborts
resolution before create is ever attempted.
*/
func TestFirstOrCreate_StopsOnClauseError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("query failed")
	var createCalled bool

	_, created, err := importer.FirstOrCreate(ctx,
		[]importer.Clause[fixture]{
			func(context.Context) (*fixture, error) { return nil, boom },
		},
		func(context.Context) (*fixture, error) {
			createCalled = true
			return &fixture{}, nil
		},
	)

	assert.ErrorIs(t, err, boom)
	assert.False(t, created)
	assert.False(t, createCalled)
}

/*
TestFirstOrCreate_PropagatesCreateError verifies that a create failure reaches
the caller with the created flag unset.
*/
func TestFirstOrCreate_PropagatesCreateError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("insert failed")

	_, created, err := importer.FirstOrCreate(ctx,
		[]importer.Clause[fixture]{},
		func(context.Context) (*fixture, error) { return nil, boom },
	)

	assert.ErrorIs(t, err, boom)
	assert.False(t, created)
}
