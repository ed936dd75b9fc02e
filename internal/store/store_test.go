// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seal-advisor/internal/advisor"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StoreConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var baseTime = time.Date(2026, 3, 1, 9, 30, 0, 123456789, time.UTC)

func makeEntry(id, fluid string, temp float64, offset time.Duration) types.RecommendationEntry {
	p := types.SealInputProfile{
		FluidType:       fluid,
		Temperature:     temp,
		Pressure:        4,
		SuctionPressure: 1.2,
		PumpType:        types.PumpCentrifugal,
		ShaftSpeed:      2950,
		FlowRate:        80,
		PipeDiameter:    100,
		Density:         types.Float(870),
	}
	ev := advisor.Evaluate(p)
	return types.RecommendationEntry{
		ID:             id,
		CreatedAt:      baseTime.Add(offset),
		Profile:        p,
		Hydraulics:     ev.Hydraulics,
		Recommendation: ev.Recommendation,
		Mitigations:    ev.Mitigations,
	}
}

// --- tests ---

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(types.StoreConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, indexDir, dbFile))
	assert.NoError(t, err)
	assert.Equal(t, dir, s.Dir())
}

func TestNewStoreReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewStore(types.StoreConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, makeEntry("a", "Water", 20, 0)))
	require.NoError(t, s.Close())

	s, err = NewStore(types.StoreConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	want := makeEntry("e-1", "Crude Oil", 180, 0)
	want.Profile.Hazardous = true
	want = withEngineOutput(want)

	require.NoError(t, s.Save(ctx, want))

	got, err := s.Get(ctx, "e-1")
	require.NoError(t, err)

	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = want.CreatedAt
	assert.Equal(t, want, got)
}

// withEngineOutput reruns the engine so the entry reflects profile edits.
func withEngineOutput(e types.RecommendationEntry) types.RecommendationEntry {
	ev := advisor.Evaluate(e.Profile)
	e.Hydraulics = ev.Hydraulics
	e.Recommendation = ev.Recommendation
	e.Mitigations = ev.Mitigations
	return e
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveReplacesSameID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, makeEntry("x", "Water", 20, 0)))
	require.NoError(t, s.Save(ctx, makeEntry("x", "Methanol", 40, time.Minute)))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Methanol", got.Profile.FluidType)
}

func TestListNewestFirstAndFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, makeEntry("old", "Water", 20, 0)))
	require.NoError(t, s.Save(ctx, makeEntry("mid", "Crude Oil", 280, time.Minute)))
	require.NoError(t, s.Save(ctx, makeEntry("new", "water", 30, 2*time.Minute)))

	ids := func(entries []types.RecommendationEntry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	all, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(all))

	limited, err := s.List(ctx, ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid"}, ids(limited))

	water, err := s.List(ctx, ListOptions{FluidType: "WATER"})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, ids(water))

	hot, err := s.List(ctx, ListOptions{Category: types.Category3})
	require.NoError(t, err)
	assert.Equal(t, []string{"mid"}, ids(hot))
}

func TestListEmpty(t *testing.T) {
	s := testStore(t)
	got, err := s.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ctx, makeEntry(fmt.Sprintf("e%d", i), "Water", 20, time.Duration(i)*time.Second)))
	}

	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPrune(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, makeEntry(fmt.Sprintf("e%d", i), "Water", 20, time.Duration(i)*time.Second)))
	}

	removed, err := s.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	left, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, "e4", left[0].ID)
	assert.Equal(t, "e3", left[1].ID)

	removed, err = s.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, makeEntry("a", "Water", 20, 0)))
	require.NoError(t, s.Save(ctx, makeEntry("b", "Toluene", 60, time.Minute)))

	path, err := s.ExportYAML(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, s.ExportPath("yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []types.RecommendationEntry
	require.NoError(t, yaml.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "Toluene", entries[0].Profile.FluidType)
}

func TestExportJSONFiltered(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, makeEntry("a", "Water", 20, 0)))
	require.NoError(t, s.Save(ctx, makeEntry("b", "Toluene", 60, time.Minute)))

	path, err := s.ExportJSON(ctx, ListOptions{FluidType: "water"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []types.RecommendationEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
}

func TestExportEmptyWritesEmptyList(t *testing.T) {
	s := testStore(t)
	path, err := s.ExportJSON(context.Background(), ListOptions{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFindByPrefix(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, makeEntry("3f2a9c1e-aaaa", "Water", 20, 0)))
	require.NoError(t, s.Save(ctx, makeEntry("3f2a0000-bbbb", "Water", 20, time.Minute)))

	got, err := s.Find(ctx, "3f2a9c1e-aaaa")
	require.NoError(t, err)
	assert.Equal(t, "3f2a9c1e-aaaa", got.ID)

	got, err = s.Find(ctx, "3f2a9")
	require.NoError(t, err)
	assert.Equal(t, "3f2a9c1e-aaaa", got.ID)

	_, err = s.Find(ctx, "3f2a")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = s.Find(ctx, "ffff")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderingWithinOneSecond(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	older := makeEntry("older", "Water", 20, 0)
	older.CreatedAt = t0.Add(100 * time.Millisecond)
	newer := makeEntry("newer", "Water", 20, 0)
	newer.CreatedAt = t0.Add(150 * time.Millisecond)
	whole := makeEntry("whole", "Water", 20, 0)
	whole.CreatedAt = t0

	require.NoError(t, s.Save(ctx, newer))
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, whole))

	all, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"newer", "older", "whole"}, []string{all[0].ID, all[1].ID, all[2].ID})

	_, err = s.Prune(ctx, 1)
	require.NoError(t, err)
	left, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "newer", left[0].ID)
}
