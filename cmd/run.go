package cmd

import (
	"fmt"
	"os"

	"github.com/kioku-app/kioku/internal/app"
	"github.com/kioku-app/kioku/internal/llm"
	"github.com/kioku-app/kioku/internal/mnemo"
	"github.com/kioku-app/kioku/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	backend := store.NewSessionBackend(st)

	// Batches left in_progress by a crash or kill consume the daily
	// allowance but should not look live forever.
	if n, err := backend.ReconcileUnfinished(ctx); err == nil && n > 0 {
		fmt.Fprintf(os.Stderr, "marked %d unfinished batch(es) abandoned\n", n)
	}

	opts := app.Options{
		Store:   st,
		Backend: backend,
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		} else {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI mnemonics will be unavailable.")
			cfg.Provider = ""
		}
	}
	if cfg.Provider != "" {
		provider, err := llm.NewProvider(ctx, cfg, st.Events())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider init failed:", err)
		} else {
			opts.Mnemo = mnemo.NewService(provider, mnemo.DefaultConfig())
		}
	}

	return app.Run(opts)
}
