package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardatan/graphql-import/pkg/schemaimport"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Config holds the application configuration
type Config struct {
	Debug    bool
	Manifest string
	Output   string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "schema-import [flags] <schema>",
		Short: "Bundle a modular GraphQL SDL schema into one file",
		Long: `schema-import follows "# import" comment directives across a tree of
GraphQL SDL files and prints the single merged schema they describe.`,
		Example: `  # Bundle a schema file and print the result
  schema-import schema.graphql

  # Bundle and write the result to a file
  schema-import -o bundled.graphql schema.graphql

  # Enable debug tracing of the import graph
  schema-import --debug schema.graphql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args[0])
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging and traversal dump")
	rootCmd.Flags().StringVar(&cfg.Manifest, "manifest", "", "Path to schema-import.toml (defaults to searching upward from the schema's directory)")
	rootCmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "Write the merged schema here instead of stdout")

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, schema string) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logical, err := loadLogicalSources(cfg, schema)
	if err != nil {
		return err
	}

	opts := []schemaimport.Option{
		schemaimport.WithLogger(logger),
		schemaimport.WithLogicalSources(logical),
	}
	if cfg.Debug {
		opts = append(opts, schemaimport.WithDebugDump(os.Stderr))
	}

	merged, err := schemaimport.ImportSchema(schema, opts...)
	if err != nil {
		return fmt.Errorf("importing %s: %w", schema, err)
	}

	if cfg.Output == "" {
		fmt.Print(merged)
		return nil
	}
	return os.WriteFile(cfg.Output, []byte(merged), 0o644)
}

// loadLogicalSources finds and resolves a schema-import.toml manifest, if
// one is configured or discoverable, into the named sources import
// directives may reference by non-path name.
func loadLogicalSources(cfg Config, schema string) (map[string]string, error) {
	if cfg.Manifest != "" {
		config, err := schemaimport.LoadManifest(cfg.Manifest)
		if err != nil {
			return nil, err
		}
		return schemaimport.ResolveLogicalSources(config, filepath.Dir(cfg.Manifest))
	}

	searchDir := filepath.Dir(schema)
	if abs, err := filepath.Abs(searchDir); err == nil {
		searchDir = abs
	}
	manifestPath, config, err := schemaimport.FindManifest(searchDir)
	if err != nil {
		return nil, fmt.Errorf("warning: failed to find schema-import.toml: %w", err)
	}
	if config == nil {
		return nil, nil
	}
	return schemaimport.ResolveLogicalSources(config, filepath.Dir(manifestPath))
}
