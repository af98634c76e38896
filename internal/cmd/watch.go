package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/output"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/scanner"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run checks when locale files change",
	Long: `Watch the locales directory and re-run the selected checks whenever a
locale file is created, modified, renamed, or removed. Only the
read-only checks are available under watch; sorting would rewrite the
files being watched.

Examples:
  cvr-i18n watch -k
  cvr-i18n -d ./locales watch -m
  cvr-i18n watch -k -m --output json`,
	Args: cobra.NoArgs,
	RunE: runWatchCmd,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	if !checkDuplicates && !checkMissing {
		return fmt.Errorf("watch requires at least one check flag (-k or -m)")
	}

	// --- Set up context with graceful shutdown ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\ncvr-i18n shutting down...")
		cancel()
	}()

	r := output.New(viper.GetString("output"))

	dir, err := scanner.Resolve(viper.GetString("directory"))
	if err != nil {
		return err
	}

	// --- Initialize watcher ---
	w, err := watcher.New(dir)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	go w.Start(ctx)

	fmt.Fprintf(os.Stderr, "cvr-i18n watching %s\n\n", dir)

	// A failing check is not fatal under watch; the next change gets a
	// fresh run.
	runChecks := func() {
		if checkDuplicates {
			if _, err := runDuplicates(dir, r); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		if checkMissing {
			if _, err := runMissing(dir, r); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}
	runChecks()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "\n%s changed, re-checking\n", ev.Path)
			runChecks()
		}
	}
}
