package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmmx/mdbed/internal/config"
	"github.com/lmmx/mdbed/internal/embed"
	"github.com/lmmx/mdbed/internal/files"
	"github.com/lmmx/mdbed/internal/graph"
	"github.com/lmmx/mdbed/internal/markdown"
	"github.com/lmmx/mdbed/internal/output"
)

var (
	embedRecursive bool
	embedThreshold float64
	embedModel     string
	embedGPU       bool
	embedOutput    string
	embedFilter    string
)

var embedCmd = &cobra.Command{
	Use:   "embed [paths...]",
	Short: "Embed markdown files and find similar nodes",
	Long: `Process markdown files, embed their text nodes, and report node pairs
scoring above the similarity threshold.

Examples:

  Process markdown files in the current directory:
      mdbed embed .

  Process specific files:
      mdbed embed file1.md file2.md

  Process recursively with a lower threshold:
      mdbed embed . -r -t 0.6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEmbed(cmd.Context(), cmd, args)
	},
}

func init() {
	embedCmd.Flags().BoolVarP(&embedRecursive, "recursive", "r", false, "Search directories recursively")
	embedCmd.Flags().Float64VarP(&embedThreshold, "threshold", "t", 0.7, "Similarity threshold (0.0-1.0)")
	embedCmd.Flags().StringVarP(&embedModel, "model", "m", "", "Embedding model to use")
	embedCmd.Flags().BoolVarP(&embedGPU, "gpu", "g", false, "Use GPU acceleration")
	embedCmd.Flags().StringVarP(&embedOutput, "output", "o", "", "Output file for results (CSV format)")
	embedCmd.Flags().StringVarP(&embedFilter, "filter", "f", "", `Filename filter glob (default "*.md")`)
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(ctx context.Context, cmd *cobra.Command, paths []string) error {
	cfg := config.Load()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if len(paths) == 0 {
		paths = []string{"."}
	}
	threshold := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = embedThreshold
	}
	model := cfg.Model
	if embedModel != "" {
		model = embedModel
	}

	client := embed.NewOllamaClient(cfg.OllamaURL, model, embedGPU, cfg.HTTPTimeout)
	defer client.Close()

	log.Info("registering model", "model", model)
	if err := client.Pull(ctx); err != nil {
		log.Warn("model registration failed, embedding will retry", "error", err)
	}

	log.Info("finding files", "paths", paths)
	entries, err := files.List(paths, embedFilter, embedRecursive)
	if err != nil {
		return err
	}
	found := files.Files(entries)
	if len(found) == 0 {
		fmt.Fprintln(os.Stderr, "No files found.")
		return nil
	}
	log.Info("found files", "count", len(found))

	// Per-file failures are logged and skipped; the batch continues.
	var records []markdown.Record
	processed := 0
	for _, f := range found {
		log.Info("processing", "file", f.Path)
		content, err := os.ReadFile(f.Path)
		if err != nil {
			log.Error("read failed, skipping", "file", f.Path, "error", err)
			continue
		}
		recs, err := markdown.ToRecords(string(content), f.Path)
		if err != nil {
			log.Error("parse failed, skipping", "file", f.Path, "error", err)
			continue
		}
		records = append(records, recs...)
		processed++
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No nodes extracted from files.")
		return nil
	}
	log.Info("extracted nodes", "nodes", len(records), "files", processed)

	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}

	log.Info("computing embeddings")
	vectors, err := embed.EmbedWithRegister(ctx, client, texts)
	if err != nil {
		return fmt.Errorf("compute embeddings: %w", err)
	}
	log.Info("embeddings computed")

	log.Info("finding similar nodes", "threshold", threshold)
	index := embed.NewIndex(vectors)
	edges, err := graph.FindSimilar(ctx, records, vectors, index, threshold, cfg.Workers)
	if err != nil {
		return err
	}

	if len(edges) == 0 {
		fmt.Fprintln(os.Stderr, "No similar nodes found.")
		return nil
	}
	log.Info("found similar pairs", "pairs", len(edges))

	if embedOutput != "" {
		f, err := os.Create(embedOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		if err := output.WriteCSV(f, edges); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		log.Info("results written", "file", embedOutput)
		return nil
	}

	fmt.Print(output.RenderEdges(edges))
	return nil
}
