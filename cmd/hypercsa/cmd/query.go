// SPDX-License-Identifier: MIT
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercsa/hypergraph"
	"github.com/katalvlaran/hypercsa/query"
	"github.com/katalvlaran/hypercsa/serialize"
)

var (
	queryInput string
	queryKind  string
	queryNodes string
	queryFile  string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run exact-match or containment queries against a compressed index",
	Example: `  hypercsa query -i index.hcsa -t exact -q 0,1,2
  hypercsa query -i index.hcsa -t contain -f queries.txt`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryInput, "input", "i", "", "compressed index file (required)")
	queryCmd.Flags().StringVarP(&queryKind, "type", "t", "exact", "query type: exact or contain")
	queryCmd.Flags().StringVarP(&queryNodes, "query", "q", "", "comma-separated node ids")
	queryCmd.Flags().StringVarP(&queryFile, "file", "f", "", "file of queries, one comma/space-separated node list per line")
	queryCmd.MarkFlagRequired("input")
}

func runQuery(cmd *cobra.Command, args []string) error {
	kind, err := parseQueryKind(queryKind)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	queries, err := collectQueries()
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if len(queries) == 0 {
		return fmt.Errorf("query: no queries given, pass -q or -f")
	}

	f, err := os.Open(queryInput)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer f.Close()

	g, err := serialize.Load(f)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	logger.Debug("loaded index", "nodes", g.N)

	for _, q := range queries {
		matches := query.Run(g, q, kind)
		fmt.Printf("%s -> %d match(es)\n", formatNodes(q), len(matches))
		for _, e := range matches {
			fmt.Printf("  %s\n", formatNodes(e))
		}
	}
	return nil
}

func parseQueryKind(s string) (query.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return query.Exact, nil
	case "contain":
		return query.Contain, nil
	default:
		return 0, fmt.Errorf("unknown query type %q (valid: exact, contain)", s)
	}
}

// collectQueries gathers the node lists to query, from -q and/or -f.
func collectQueries() ([][]hypergraph.Node, error) {
	var queries [][]hypergraph.Node

	if queryNodes != "" {
		q, err := parseNodeList(queryNodes)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	if queryFile != "" {
		f, err := os.Open(queryFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			q, err := parseNodeList(line)
			if err != nil {
				return nil, err
			}
			queries = append(queries, q)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	return queries, nil
}

func parseNodeList(s string) ([]hypergraph.Node, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	nodes := make([]hypergraph.Node, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid node id %q: %w", f, err)
		}
		nodes = append(nodes, hypergraph.Node(v))
	}
	return nodes, nil
}

func formatNodes(nodes []hypergraph.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
