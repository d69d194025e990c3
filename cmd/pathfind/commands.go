package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/pathfind/graphfile"
	"github.com/katalvlaran/pathfind/observe"
	"github.com/katalvlaran/pathfind/search"
	"github.com/katalvlaran/pathfind/store"
	"github.com/spf13/cobra"
)

func (a *app) routeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			rep, err := observe.Run[string](cmd.Context(), a.runner, g, a.from, a.to, a.searchOptions(g)...)
			if err != nil {
				return err
			}
			a.printReport(rep)

			return nil
		},
	}
	a.addQueryFlags(cmd, true)

	return cmd
}

// printReport writes the path, or the no-path message, to stdout.
func (a *app) printReport(rep *observe.Report[string]) {
	if !rep.Found() {
		fmt.Fprintln(a.stdout, noPathMessage(a.from, a.to))
		return
	}
	fmt.Fprintf(a.stdout, "path: %s\n", strings.Join(rep.Path.Nodes, " -> "))
	fmt.Fprintf(a.stdout, "cost: %g\n", rep.Path.Cost)
	fmt.Fprintf(a.stdout, "hops: %d\n", len(rep.Path.Nodes)-1)
	fmt.Fprintf(a.stdout, "algo: %s, pops: %d, expanded: %d\n",
		rep.Result.Mode, rep.Result.Stats.Pops, rep.Result.Stats.Expanded)
}

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run Dijkstra and A* on the same query and compare the work done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			var opts []search.Option
			if a.cfg.MaxExpansions > 0 {
				opts = append(opts, search.WithMaxExpansions(a.cfg.MaxExpansions))
			}
			c, err := observe.Compare[string](cmd.Context(), a.runner, g, a.from, a.to, a.heuristic(g), opts...)
			if err != nil {
				return err
			}
			if !c.Dijkstra.Found() {
				fmt.Fprintln(a.stdout, noPathMessage(a.from, a.to))
				return nil
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "algo\tcost\tpops\texpanded\tstale\tpath")
			for _, rep := range []*observe.Report[string]{c.Dijkstra, c.AStar} {
				st := rep.Result.Stats
				fmt.Fprintf(tw, "%s\t%g\t%d\t%d\t%d\t%s\n", rep.Result.Mode, rep.Path.Cost,
					st.Pops, st.Expanded, st.StaleSkips, strings.Join(rep.Path.Nodes, " -> "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if d, s := c.Dijkstra.Result.Stats.Pops, c.AStar.Result.Stats.Pops; d > 0 {
				fmt.Fprintf(a.stdout, "A* popped %.1f%% of Dijkstra's entries\n", 100*float64(s)/float64(d))
			}

			return nil
		},
	}
	a.addQueryFlags(cmd, true)

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the Euclidean heuristic for admissibility and consistency toward a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			h := a.heuristic(g)
			nodes := g.Nodes()

			inconsistent := search.CheckConsistent[string](g, h, a.to, nodes, 1e-9)
			inadmissible, err := search.CheckAdmissible[string](cmd.Context(), g, h, a.to, nodes, 1e-9)
			if err != nil {
				return err
			}

			st := g.Stats()
			fmt.Fprintf(a.stdout, "graph: %d nodes, %d edges, %d positioned\n", st.Nodes, st.Edges, st.Positioned)
			fmt.Fprintf(a.stdout, "heuristic: euclidean x %g toward %s\n", a.cfg.Scale, a.to)
			printViolations(a, "admissible", inadmissible, false)
			printViolations(a, "consistent", inconsistent, true)

			return nil
		},
	}
	a.addQueryFlags(cmd, false)

	return cmd
}

// maxListed bounds the violations printed per check.
const maxListed = 10

func printViolations(a *app, what string, vs []search.Violation[string], arcs bool) {
	if len(vs) == 0 {
		fmt.Fprintf(a.stdout, "%s: yes\n", what)
		return
	}
	fmt.Fprintf(a.stdout, "%s: no (%d violations)\n", what, len(vs))
	for i, v := range vs {
		if i == maxListed {
			fmt.Fprintf(a.stdout, "  ... %d more\n", len(vs)-maxListed)
			break
		}
		if arcs {
			fmt.Fprintf(a.stdout, "  %s -> %s: h=%g > w+h'=%g\n", v.Node, v.Neighbor, v.Estimate, v.Bound)
		} else {
			fmt.Fprintf(a.stdout, "  %s: h=%g > cost=%g\n", v.Node, v.Estimate, v.Bound)
		}
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Store a graph document in the database under --name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.graphPath == "" || a.name == "" || a.cfg.DB.DSN == "" {
				return errors.New("import needs --graph, --db-dsn and --name")
			}
			g, err := graphfile.LoadGraph(a.graphPath)
			if err != nil {
				return err
			}
			st, err := store.Open(cmd.Context(), a.cfg.DB.Driver, a.cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Save(cmd.Context(), a.name, g); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "imported %s: %d nodes, %d edges\n", a.name, g.NodeCount(), g.EdgeCount())

			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a stored graph to a JSON or YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.graphPath != "" {
				return errors.New("export reads from the database; drop --graph")
			}
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			doc := graphfile.FromGraph(g)
			if out == "" {
				return graphfile.Encode(a.stdout, doc, graphfile.YAML)
			}
			if err := graphfile.Save(out, doc); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "exported %s to %s\n", a.name, out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.json, .yaml); YAML on stdout when empty")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List graphs stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DB.DSN == "" {
				return errors.New("list needs --db-dsn")
			}
			st, err := store.Open(cmd.Context(), a.cfg.DB.Driver, a.cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer st.Close()
			infos, err := st.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "name\tdirected\tnodes\tedges")
			for _, gi := range infos {
				fmt.Fprintf(tw, "%s\t%t\t%d\t%d\n", gi.Name, gi.Directed, gi.Nodes, gi.Edges)
			}

			return tw.Flush()
		},
	}
}
