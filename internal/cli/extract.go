package cli

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kolah/flatapi/internal/config"
	"github.com/kolah/flatapi/internal/extract"
	"github.com/kolah/flatapi/internal/golang"
	"github.com/kolah/flatapi/internal/loader"
	"github.com/kolah/flatapi/internal/report"
	"github.com/spf13/cobra"
)

// ErrDropped is returned in strict mode when extraction dropped any item.
var ErrDropped = errors.New("extraction dropped items")

func ExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [spec]",
		Short: "Extract typed entrypoints from an OpenAPI specification",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}

	config.BindFlags(cmd)

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd, args)
	if err != nil {
		return err
	}

	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	doc := result.Document
	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, doc.Info.Title, doc.Info.Version)
	cmd.PrintErrf("  Paths: %d\n", len(doc.Paths))

	opts := []extract.Option{
		extract.WithConcurrency(cfg.Concurrency),
		extract.WithIncludeTags(cfg.IncludeTags...),
		extract.WithExcludeTags(cfg.ExcludeTags...),
	}
	if cfg.Verbose {
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, extract.WithLogger(slog.New(handler)))
	}

	extracted := extract.Extract(doc, opts...)
	cmd.PrintErrf("  Entrypoints: %d\n", len(extracted.Entrypoints))

	for _, d := range extracted.Diagnostics {
		switch d.Severity {
		case extract.SeverityError:
			cmd.PrintErrf("Error: %s\n", d)
		default:
			cmd.PrintErrf("Warning: %s\n", d)
		}
	}

	out := report.Build(doc, extracted, golang.NewNamer(cfg.AdditionalInitialisms...))

	var buf bytes.Buffer
	if err := report.Write(&buf, out, cfg.Format); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if cfg.Output == "" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output, err)
		}
		cmd.PrintErrf("Written: %s\n", cfg.Output)
	}

	if n := extracted.Errors(); cfg.Strict && n > 0 {
		return fmt.Errorf("%w: %d errors", ErrDropped, n)
	}

	return nil
}
