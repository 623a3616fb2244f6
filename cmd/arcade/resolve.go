package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daichengyi/minigame/internal/config"
	"github.com/daichengyi/minigame/internal/games/linkup"
)

var (
	flagFrom        string
	flagTo          string
	flagTurnPenalty int
	flagMaxTurns    int
	flagHint        bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <layout.yaml>",
	Short: "Find the path between two tiles of a layout",
	Long: `Load a board layout and print the best connecting path between two
tiles, drawn over the board with its border ring.

The query comes from --from/--to or from the layout's own query block.
With --hint, the first connectable pair on the board is shown instead.

Search settings default to the linkup config (see --config).

Examples:
  arcade resolve board.yaml
  arcade resolve board.yaml --from 0,0 --to 3,4
  arcade resolve board.yaml --hint --max-turns 2`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&flagFrom, "from", "", "First tile as row,col")
	resolveCmd.Flags().StringVar(&flagTo, "to", "", "Second tile as row,col")
	resolveCmd.Flags().IntVar(&flagTurnPenalty, "turn-penalty", -1, "Cost of each direction change (-1 = from config)")
	resolveCmd.Flags().IntVar(&flagMaxTurns, "max-turns", -1, "Most turns a path may have, 0 for no cap (-1 = from config)")
	resolveCmd.Flags().BoolVar(&flagHint, "hint", false, "Show the first connectable pair instead of a query")
}

// parsePoint reads "row,col".
func parsePoint(s string) (linkup.PathPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return linkup.PathPoint{}, fmt.Errorf("point %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return linkup.PathPoint{}, fmt.Errorf("point %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return linkup.PathPoint{}, fmt.Errorf("point %q: bad column: %w", s, err)
	}
	return linkup.P(row, col), nil
}

func runResolve(_ *cobra.Command, args []string) error {
	layout, err := linkup.LoadLayout(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadLinkup(flagConfig)
	if err != nil {
		return err
	}
	if flagTurnPenalty >= 0 {
		cfg.Search.TurnPenalty = flagTurnPenalty
	}
	if flagMaxTurns >= 0 {
		cfg.Search.MaxTurns = flagMaxTurns
	}

	r := linkup.NewResolver(layout.Board)
	r.SetTurnPenalty(cfg.Search.TurnPenalty)
	r.SetMaxTurns(cfg.Search.MaxTurns)

	if layout.Name != "" {
		fmt.Printf("Layout: %s\n", layout.Name)
	}
	fmt.Printf("Board: %dx%d, %d tiles\n\n", layout.Board.Rows(), layout.Board.Cols(), layout.Board.RemainingCount())

	if flagHint {
		return printHint(r)
	}

	from, to, err := queryPoints(layout)
	if err != nil {
		return err
	}

	path, ok, err := r.ResolveAt(from, to)
	if err != nil {
		if errors.Is(err, linkup.ErrInvalidQuery) {
			return fmt.Errorf("cannot resolve %s and %s: %w", from, to, err)
		}
		return err
	}
	stats := r.Stats()
	logger.Debug("resolved", "from", from, "to", to, "found", ok,
		"adjacent", stats.Adjacent, "pairs", stats.LaunchPairs, "expanded", stats.Expanded, "candidates", stats.Candidates)

	if !ok {
		fmt.Printf("No path between %s and %s.\n\n", from, to)
		fmt.Println(linkup.DrawPath(layout.Board, nil))
		return nil
	}
	printPath(layout.Board, path)
	fmt.Printf("Searched %d launch pairs, expanded %d states, kept %d candidates.\n",
		stats.LaunchPairs, stats.Expanded, stats.Candidates)
	return nil
}

// queryPoints picks the query from the flags, falling back to the layout.
func queryPoints(layout linkup.Layout) (from, to linkup.PathPoint, err error) {
	switch {
	case flagFrom != "" || flagTo != "":
		if flagFrom == "" || flagTo == "" {
			return from, to, errors.New("--from and --to must be given together")
		}
		if from, err = parsePoint(flagFrom); err != nil {
			return from, to, err
		}
		to, err = parsePoint(flagTo)
		return from, to, err
	case layout.HasQuery:
		return layout.From, layout.To, nil
	default:
		return from, to, errors.New("no query: pass --from and --to, --hint, or add a query to the layout")
	}
}

func printHint(r *linkup.Resolver) error {
	h, ok := linkup.FindHint(r)
	if !ok {
		fmt.Println("No moves left on this board.")
		return nil
	}
	fmt.Printf("Hint: %s and %s\n", h.A.Point(), h.B.Point())
	printPath(r.Board(), h.Path)
	return nil
}

func printPath(b *linkup.Board, path linkup.Path) {
	fmt.Printf("Path: %s\n", path)
	fmt.Printf("Turns: %d\n\n", path.Turns())
	fmt.Println(linkup.DrawPath(b, path))
	fmt.Println()
}
