// Command pathfind runs shortest-path queries over graph files or graphs
// stored in SQLite/MySQL.
//
//	pathfind route --graph usa.yaml --from "New York" --to "Los Angeles" --algo astar --scale 0.15
//	pathfind compare --graph grid.json --from 0,0 --to 9,9
//	pathfind import --graph usa.yaml --db-driver sqlite --db-dsn graphs.db --name usa
//	pathfind route --db-driver sqlite --db-dsn graphs.db --name usa --from Seattle --to Miami
//
// route runs Dijkstra unless --algo astar is given. A* uses straight-line
// distance times --scale (default 1), which must not overestimate road
// costs for the answer to stay optimal; `pathfind check` reports whether it does.
//
// Exit codes: 0 on success and when no path exists, 1 on usage and I/O
// errors, 2 for malformed graphs, 3 for internal errors.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
