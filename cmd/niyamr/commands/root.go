// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Provides verbose/quiet/format flags shared by all commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "niyamr",
		Short: "Legislative document analysis pipeline",
		Long: `
███╗   ██╗██╗██╗   ██╗ █████╗ ███╗   ███╗██████╗
████╗  ██║██║╚██╗ ██╔╝██╔══██╗████╗ ████║██╔══██╗
██╔██╗ ██║██║ ╚████╔╝ ███████║██╔████╔██║██████╔╝
██║╚██╗██║██║  ╚██╔╝  ██╔══██║██║╚██╔╝██║██╔══██╗
██║ ╚████║██║   ██║   ██║  ██║██║ ╚═╝ ██║██║  ██║
╚═╝  ╚═══╝╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝

Niyamr ingests legislative documents, indexes them for keyword and
semantic search, and analyzes them with AI: bullet-point summaries,
structured section extraction, and compliance rule checking.

Documents live in a local object store and are indexed into a search
index and a document store. All derived analysis is persisted as
retrievable artifacts.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, json, text")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Register subcommands
	rootCmd.AddCommand(NewPutCmd())
	rootCmd.AddCommand(NewIndexCmd())
	rootCmd.AddCommand(NewSummarizeCmd())
	rootCmd.AddCommand(NewSectionsCmd())
	rootCmd.AddCommand(NewRulesCmd())
	rootCmd.AddCommand(NewSearchCmd())
	rootCmd.AddCommand(NewChunksCmd())
	rootCmd.AddCommand(NewArtifactsCmd())
	rootCmd.AddCommand(NewMCPCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
