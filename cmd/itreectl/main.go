// Command itreectl loads a set of integer intervals from a YAML config file
// into an intervaltree.Tree and runs spatial queries against it. Its
// command/logging wiring is grounded on MacroPower-niceyaml's cmd/nyaml
// (cobra + fang.Execute) and danroc-geoblock's cmd/geoblock (zerolog setup,
// config auto-reload).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lowasser/intervaltree"
	"github.com/lowasser/intervaltree/config"
	"github.com/lowasser/intervaltree/ival"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := newRootCommand()
	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "itreectl",
		Short: "Inspect a collection of integer intervals with spatial queries",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML interval config file (required)")
	root.MarkPersistentFlagRequired("config") //nolint:errcheck

	root.AddCommand(
		newQueryCommand(&configPath),
		newListCommand(&configPath),
		newWatchCommand(&configPath),
	)
	return root
}

func loadTree(path string) (*intervaltree.Tree[ival.Range[ival.Value[int64]], ival.Value[int64]], *config.Configuration, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := config.ReadConfig(f)
	if err != nil {
		return nil, nil, err
	}

	tree := intervaltree.New[ival.Range[ival.Value[int64]], ival.Value[int64]]()
	for _, spec := range cfg.Intervals {
		rng, err := spec.Range()
		if err != nil {
			return nil, nil, err
		}
		tree.Add(rng)
	}
	return tree, cfg, nil
}

func newListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored interval in canonical order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := loadTree(*configPath)
			if err != nil {
				return err
			}
			for r := range tree.All() {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func newQueryCommand(configPath *string) *cobra.Command {
	var (
		kind  string
		lower int64
		upper int64
		point int64
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a connected/enclosedBy/enclosing/containing query",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := loadTree(*configPath)
			if err != nil {
				return err
			}

			if kind == "containing" {
				for r := range tree.Containing(ival.Value[int64](point)) {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
				return nil
			}

			q := ival.Closed(ival.Value[int64](lower), ival.Value[int64](upper))

			var results []ival.Range[ival.Value[int64]]
			switch kind {
			case "connected":
				for r := range tree.Connected(q) {
					results = append(results, r)
				}
			case "enclosedBy":
				for r := range tree.EnclosedBy(q) {
					results = append(results, r)
				}
			case "enclosing":
				for r := range tree.Enclosing(q) {
					results = append(results, r)
				}
			default:
				return fmt.Errorf("unknown query kind %q (want connected, enclosedBy, enclosing or containing)", kind)
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "connected", "connected, enclosedBy, enclosing or containing")
	cmd.Flags().Int64Var(&lower, "lower", 0, "query interval lower bound (ignored for containing)")
	cmd.Flags().Int64Var(&upper, "upper", 0, "query interval upper bound (ignored for containing)")
	cmd.Flags().Int64Var(&point, "point", 0, "query point (only used for containing)")
	return cmd
}

func newWatchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the config file and log every reload until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := config.NewWatcher(*configPath)
			if err != nil {
				return err
			}
			defer watcher.Close()

			log.Info().Str("path", *configPath).Msg("watching configuration file")
			for {
				select {
				case cfg := <-watcher.Changes():
					log.Info().Int("intervals", len(cfg.Intervals)).Msg("configuration reloaded")
				case err := <-watcher.Errors():
					log.Error().Err(err).Msg("configuration reload failed")
				}
			}
		},
	}
}
