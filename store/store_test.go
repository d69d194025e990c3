package store_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/store"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), "sqlite", filepath.Join(t.TempDir(), "graphs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// newMySQLStore skips unless TEST_MYSQL_DSN is set,
// e.g. TEST_MYSQL_DSN="user:pass@tcp(localhost:3306)/pathfind_test".
func newMySQLStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("Skipping MySQL tests: TEST_MYSQL_DSN not set")
	}
	st, err := store.Open(context.Background(), "mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func positioned(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.SetPosition("A", 0, 0))
	require.NoError(t, g.SetPosition("B", 3, 4))
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 2.25))
	require.NoError(t, g.AddEdge("A", "B", 7)) // parallel
	g.AddNode("Z")

	return g
}

func testRoundtrip(t *testing.T, st *store.Store) {
	ctx := context.Background()
	g := positioned(t)
	require.NoError(t, st.Save(ctx, "pf-test-roundtrip", g))
	t.Cleanup(func() { _ = st.Delete(ctx, "pf-test-roundtrip") })

	back, err := st.Load(ctx, "pf-test-roundtrip")
	require.NoError(t, err)
	require.Equal(t, g.Stats(), back.Stats())
	require.Equal(t, g.Edges(), back.Edges())
	require.Equal(t, g.Nodes(), back.Nodes())
	for _, id := range g.Nodes() {
		want, wok := g.Position(id)
		got, gok := back.Position(id)
		require.Equal(t, wok, gok, id)
		require.Equal(t, want, got, id)
	}
	require.Equal(t, g.Neighbors("B"), back.Neighbors("B"))
}

func testReplaceAndDelete(t *testing.T, st *store.Store) {
	ctx := context.Background()
	name := "pf-test-replace"
	t.Cleanup(func() { _ = st.Delete(ctx, name) })

	require.NoError(t, st.Save(ctx, name, positioned(t)))

	directed := core.NewGraph[string](core.WithDirected(true))
	require.NoError(t, directed.AddEdge("X", "Y", 1))
	require.NoError(t, st.Save(ctx, name, directed))

	back, err := st.Load(ctx, name)
	require.NoError(t, err)
	require.True(t, back.Directed())
	require.Equal(t, []string{"X", "Y"}, back.Nodes())
	require.False(t, back.HasEdge("Y", "X"))

	require.NoError(t, st.Delete(ctx, name))
	_, err = st.Load(ctx, name)
	require.ErrorIs(t, err, store.ErrGraphNotFound)
	require.ErrorIs(t, st.Delete(ctx, name), store.ErrGraphNotFound)
}

func TestSQLite_Roundtrip(t *testing.T)       { testRoundtrip(t, newSQLiteStore(t)) }
func TestSQLite_ReplaceAndDelete(t *testing.T) { testReplaceAndDelete(t, newSQLiteStore(t)) }
func TestMySQL_Roundtrip(t *testing.T)        { testRoundtrip(t, newMySQLStore(t)) }
func TestMySQL_ReplaceAndDelete(t *testing.T)  { testReplaceAndDelete(t, newMySQLStore(t)) }

func TestSQLite_List(t *testing.T) {
	ctx := context.Background()
	st := newSQLiteStore(t)

	list, err := st.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, st.Save(ctx, "b", positioned(t)))
	require.NoError(t, st.Save(ctx, "a", core.NewGraph[string](core.WithDirected(true))))

	list, err = st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []store.GraphInfo{
		{Name: "a", Directed: true},
		{Name: "b", Nodes: 4, Edges: 3},
	}, list)
}

func TestSQLite_InvalidNames(t *testing.T) {
	ctx := context.Background()
	st := newSQLiteStore(t)
	long := string(make([]byte, 192))

	require.ErrorIs(t, st.Save(ctx, "", positioned(t)), store.ErrInvalidName)
	_, err := st.Load(ctx, long)
	require.ErrorIs(t, err, store.ErrInvalidName)
	_, err = st.Load(ctx, "missing")
	require.ErrorIs(t, err, store.ErrGraphNotFound)
}

func TestSQLite_Persistent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	st, err := store.Open(ctx, "sqlite", path)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, "g", positioned(t)))
	require.NoError(t, st.Close())
	require.NoError(t, st.Close(), "second close is a no-op")

	_, err = st.Load(ctx, "g")
	require.ErrorIs(t, err, store.ErrClosed)

	st, err = store.Open(ctx, "sqlite3", path)
	require.NoError(t, err)
	defer st.Close()
	require.Equal(t, "sqlite", st.Driver())
	g, err := st.Load(ctx, "g")
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
}

func TestSQLite_ConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	st := newSQLiteStore(t)
	require.NoError(t, st.Save(ctx, "shared", positioned(t)))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Load(ctx, "shared")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := store.Open(ctx, "postgres", "x")
	require.ErrorIs(t, err, store.ErrUnsupportedDriver)

	_, err = store.Open(ctx, "mysql", "not a dsn")
	require.ErrorIs(t, err, store.ErrInvalidDSN)
}
