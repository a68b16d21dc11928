package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"intent-engine/internal/intent"
)

// openFunc builds the usecase a command runs against, plus its closer.
type openFunc func(ctx context.Context, verbose bool) (intent.UseCase, func() error, error)

type app struct {
	open    openFunc
	verbose bool

	uc      intent.UseCase
	closeFn func() error
}

func newRootCmd(open openFunc) *cobra.Command {
	a := &app{open: open}

	root := &cobra.Command{
		Use:   "intentctl",
		Short: "Classify utterances and manage the intent engine from the shell",
		Long: `intentctl runs the intent engine locally against the configured overlay
file and database. It reads config.yaml from ./config, . or /etc/intent-engine/.

Examples:
  intentctl classify "show orders from last week"
  intentctl understand "הצג הזמנה 1234"
  intentctl learn feedback --predicted general.general --correct order_management.get_orders "shipments please"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			uc, closeFn, err := a.open(cmd.Context(), a.verbose)
			if err != nil {
				return err
			}
			a.uc, a.closeFn = uc, closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeFn == nil {
				return nil
			}
			return a.closeFn()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print engine logs")

	root.AddCommand(
		a.newClassifyCmd(),
		a.newUnderstandCmd(),
		a.newExtractCmd(),
		a.newDescribeCmd(),
		a.newLearnCmd(),
		a.newHistoryCmd(),
		a.newMineCmd(),
		a.newIntentsCmd(),
		a.newTaxonomyCmd(),
	)
	return root
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// parsePair accepts "task.intent".
func parsePair(s string) (intent.Pair, error) {
	task, it, ok := strings.Cut(s, ".")
	if !ok || task == "" || it == "" {
		return intent.Pair{}, fmt.Errorf("invalid intent %q, want task.intent", s)
	}
	return intent.NewPair(task, it), nil
}

func joinArgs(args []string) string { return strings.Join(args, " ") }
