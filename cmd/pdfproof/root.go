package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pdfproof.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdfproof",
		Short: "Proofreading tool for PDF documents",
		Long: `pdfproof proofreads PDF documents.

It highlights punctuation marks from the wrong family, words flagged by a
proofreading service and, optionally, lines with unexpected indentation.
Every processed document gets a "<name>_highlighted.pdf" copy next to it,
and one summary PDF collects the findings of the whole run.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the run; the
// document in progress stops at its next cancellation point.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
