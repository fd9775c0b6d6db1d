package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	level := &slog.LevelVar{}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mlog := log.WithGroup("main")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	debug := false
	rootCmd := &cobra.Command{
		Use:   "roleset action [flags]",
		Short: "Role-based authorization checks from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				level.Set(slog.LevelDebug)
			}
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debug, "debug", false, "log every decision at debug level")

	// Add all sub-commands
	rootCmd.AddCommand(newCheckCmd(log.WithGroup("check")))

	// Make sure to cancel the context if a signal was received
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		mlog.Info("received signal", slog.String("signal", sig.String()))
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		mlog.Error("command failed", slog.Any("error", err))
		os.Exit(-1)
	}
}
