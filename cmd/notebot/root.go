package main

import (
	"context"
	"os"

	"github.com/sandevgo/notebot/internal/config"
	"github.com/sandevgo/notebot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "notebot",
	Short: "NoteBot — a webhook note-taking bot for Telegram",
	Long:  `NoteBot receives Telegram updates over a webhook and turns chat messages into stored notes.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
