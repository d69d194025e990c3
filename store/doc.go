// Package store persists weighted graphs in SQL databases.
//
// Two backends are supported through database/sql:
//
//   - "sqlite": a single-file database via modernc.org/sqlite (pure Go).
//     WAL mode, foreign keys and a busy timeout are enabled on open.
//   - "mysql": a MySQL server via github.com/go-sql-driver/mysql.
//
// Schema (created on Open if missing):
//
//   - pf_graphs(name, directed)
//   - pf_nodes(graph, id, position)     position is a JSON array or NULL
//   - pf_edges(graph, seq, src, dst, weight)
//
// Save replaces a graph inside one transaction, so readers never observe a
// half-written graph. Undirected edges are stored once and mirrored again
// by core.Graph on Load.
package store
