package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// dialect holds the per-driver parts of the schema and connection setup.
type dialect struct {
	name  string
	setup []string // statements run once per connection pool
	ddl   []string
}

var sqliteDialect = dialect{
	name: "sqlite",
	setup: []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	},
	ddl: []string{
		`CREATE TABLE IF NOT EXISTS pf_graphs (
			name TEXT PRIMARY KEY,
			directed BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pf_nodes (
			graph TEXT NOT NULL REFERENCES pf_graphs(name) ON DELETE CASCADE,
			id TEXT NOT NULL,
			position TEXT,
			PRIMARY KEY (graph, id)
		)`,
		`CREATE TABLE IF NOT EXISTS pf_edges (
			graph TEXT NOT NULL REFERENCES pf_graphs(name) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			src TEXT NOT NULL,
			dst TEXT NOT NULL,
			weight REAL NOT NULL,
			PRIMARY KEY (graph, seq)
		)`,
	},
}

var mysqlDialect = dialect{
	name: "mysql",
	ddl: []string{
		`CREATE TABLE IF NOT EXISTS pf_graphs (
			name VARCHAR(191) NOT NULL PRIMARY KEY,
			directed BOOLEAN NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS pf_nodes (
			graph VARCHAR(191) NOT NULL,
			id VARCHAR(191) NOT NULL,
			position TEXT NULL,
			PRIMARY KEY (graph, id),
			FOREIGN KEY (graph) REFERENCES pf_graphs(name) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS pf_edges (
			graph VARCHAR(191) NOT NULL,
			seq INT NOT NULL,
			src VARCHAR(191) NOT NULL,
			dst VARCHAR(191) NOT NULL,
			weight DOUBLE NOT NULL,
			PRIMARY KEY (graph, seq),
			FOREIGN KEY (graph) REFERENCES pf_graphs(name) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
}

// openDB connects with the driver named by d.
func (d dialect) openDB(dsn string) (*sql.DB, error) {
	switch d.name {
	case "sqlite":
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, err
		}
		// SQLite supports one writer at a time.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)

		return db, nil
	case "mysql":
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
		}
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
		}

		return sql.OpenDB(connector), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, d.name)
	}
}

// migrate runs the setup statements and creates missing tables.
func (d dialect) migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range d.setup {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: %s: %w", stmt, err)
		}
	}
	for _, stmt := range d.ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: create tables: %w", err)
		}
	}

	return nil
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return sqliteDialect, nil
	case "mysql":
		return mysqlDialect, nil
	default:
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
