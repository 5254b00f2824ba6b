// ABOUTME: CLI command to upload a local file into the object store
// ABOUTME: Stored documents are addressed by basename for later indexing
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mustansirbharmal/niyamr/internal/config"
	"github.com/mustansirbharmal/niyamr/internal/storage"
)

// NewPutCmd creates the put command
func NewPutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <file>",
		Short: "Store a document for indexing",
		Long: `Copy a local file into the object store.

Stored documents are addressed by their basename and can then be
indexed, summarized, or rule-checked by name.

Examples:
  niyamr put ./acts/pension_act_2024.txt
  niyamr index pension_act_2024.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runPut,
	}

	return cmd
}

func runPut(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	blobs, err := storage.NewBlobStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing object store: %w", err)
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)
	if err := blobs.Put(name, data); err != nil {
		return fmt.Errorf("storing document: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %s (%d bytes)\n", name, len(data))
	}
	return nil
}
