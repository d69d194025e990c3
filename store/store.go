package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors returned by store.
var (
	// ErrGraphNotFound indicates no graph is stored under the given name.
	ErrGraphNotFound = errors.New("store: graph not found")

	// ErrUnsupportedDriver indicates a driver other than sqlite or mysql.
	ErrUnsupportedDriver = errors.New("store: unsupported driver")

	// ErrInvalidDSN indicates a connection string the driver rejects.
	ErrInvalidDSN = errors.New("store: invalid dsn")

	// ErrInvalidName indicates an empty or over-long graph name.
	ErrInvalidName = errors.New("store: invalid graph name")

	// ErrCorrupt indicates stored rows that do not form a valid graph.
	ErrCorrupt = errors.New("store: corrupt graph rows")

	// ErrClosed indicates use of a closed Store.
	ErrClosed = errors.New("store: closed")
)

// maxNameLen keeps names within the MySQL utf8mb4 index limit.
const maxNameLen = 191

// GraphInfo summarizes one stored graph.
type GraphInfo struct {
	Name     string
	Directed bool
	Nodes    int
	Edges    int
}

// Store persists graphs under unique names. It is safe for concurrent use.
type Store struct {
	db      *sql.DB
	dialect dialect

	mu     sync.RWMutex
	closed bool
}

// Open connects to a database and creates the tables if needed.
//
//	st, err := store.Open(ctx, "sqlite", "./graphs.db")
//	st, err := store.Open(ctx, "mysql", "user:pass@tcp(localhost:3306)/routes")
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	db, err := d.openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: connect %s: %w", d.name, err)
	}
	if err := d.migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dialect: d}, nil
}

// Driver returns the normalized driver name.
func (s *Store) Driver() string { return s.dialect.name }

// Close releases the connection pool. Further calls fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

func (s *Store) check(name string) error {
	if s.closed {
		return ErrClosed
	}
	if name == "" || len(name) > maxNameLen {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// Save stores g under name, replacing any graph with that name.
func (s *Store) Save(ctx context.Context, name string, g *core.Graph[string]) (err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(name); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err := deleteRows(ctx, tx, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO pf_graphs (name, directed) VALUES (?, ?)", name, g.Directed()); err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, "INSERT INTO pf_nodes (graph, id, position) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}
	defer nodeStmt.Close()
	for _, id := range g.Nodes() {
		var pos sql.NullString
		if p, ok := g.Position(id); ok {
			raw, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("store: save %q: position of %q: %w", name, id, err)
			}
			pos = sql.NullString{String: string(raw), Valid: true}
		}
		if _, err := nodeStmt.ExecContext(ctx, name, id, pos); err != nil {
			return fmt.Errorf("store: save %q: node %q: %w", name, id, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, "INSERT INTO pf_edges (graph, seq, src, dst, weight) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}
	defer edgeStmt.Close()
	for i, e := range g.Edges() {
		if _, err := edgeStmt.ExecContext(ctx, name, i, e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("store: save %q: edge %q→%q: %w", name, e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: save %q: commit: %w", name, err)
	}

	return nil
}

// deleteRows removes every row of a graph; children first so that it also
// works without cascading foreign keys.
func deleteRows(ctx context.Context, tx *sql.Tx, name string) error {
	for _, stmt := range []string{
		"DELETE FROM pf_edges WHERE graph = ?",
		"DELETE FROM pf_nodes WHERE graph = ?",
		"DELETE FROM pf_graphs WHERE name = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, name); err != nil {
			return fmt.Errorf("store: delete %q: %w", name, err)
		}
	}

	return nil
}

// Load rebuilds the graph stored under name.
func (s *Store) Load(ctx context.Context, name string) (*core.Graph[string], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(name); err != nil {
		return nil, err
	}

	var directed bool
	err := s.db.QueryRowContext(ctx, "SELECT directed FROM pf_graphs WHERE name = ?", name).Scan(&directed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}
	g := core.NewGraph[string](core.WithDirected(directed))

	if err := s.loadNodes(ctx, name, g); err != nil {
		return nil, err
	}
	if err := s.loadEdges(ctx, name, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Store) loadNodes(ctx context.Context, name string, g *core.Graph[string]) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, position FROM pf_nodes WHERE graph = ? ORDER BY id", name)
	if err != nil {
		return fmt.Errorf("store: load %q nodes: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  string
			pos sql.NullString
		)
		if err := rows.Scan(&id, &pos); err != nil {
			return fmt.Errorf("store: load %q nodes: %w", name, err)
		}
		if !pos.Valid {
			g.AddNode(id)
			continue
		}
		var coords []float64
		if err := json.Unmarshal([]byte(pos.String), &coords); err != nil {
			return fmt.Errorf("%w: %q node %q position: %w", ErrCorrupt, name, id, err)
		}
		if err := g.SetPosition(id, coords...); err != nil {
			return fmt.Errorf("%w: %q node %q: %w", ErrCorrupt, name, id, err)
		}
	}

	return rows.Err()
}

func (s *Store) loadEdges(ctx context.Context, name string, g *core.Graph[string]) error {
	rows, err := s.db.QueryContext(ctx, "SELECT src, dst, weight FROM pf_edges WHERE graph = ? ORDER BY seq", name)
	if err != nil {
		return fmt.Errorf("store: load %q edges: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			src, dst string
			w        float64
		)
		if err := rows.Scan(&src, &dst, &w); err != nil {
			return fmt.Errorf("store: load %q edges: %w", name, err)
		}
		if err := g.AddEdge(src, dst, w); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrCorrupt, name, err)
		}
	}

	return rows.Err()
}

// List returns every stored graph ordered by name.
func (s *Store) List(ctx context.Context) ([]GraphInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT g.name, g.directed,
			(SELECT COUNT(*) FROM pf_nodes n WHERE n.graph = g.name),
			(SELECT COUNT(*) FROM pf_edges e WHERE e.graph = g.name)
		FROM pf_graphs g
		ORDER BY g.name`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []GraphInfo
	for rows.Next() {
		var gi GraphInfo
		if err := rows.Scan(&gi.Name, &gi.Directed, &gi.Nodes, &gi.Edges); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, gi)
	}

	return out, rows.Err()
}

// Delete removes the graph stored under name.
func (s *Store) Delete(ctx context.Context, name string) (err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(name); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM pf_graphs WHERE name = ?", name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	if err := deleteRows(ctx, tx, name); err != nil {
		return err
	}

	return tx.Commit()
}
