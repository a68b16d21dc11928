package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"intent-engine/internal/intent"
)

func (a *app) newLearnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Teach the engine from corrections or labeled examples",
	}
	cmd.AddCommand(a.newFeedbackCmd(), a.newExamplesCmd())
	return cmd
}

func (a *app) newFeedbackCmd() *cobra.Command {
	var predicted, correct string
	cmd := &cobra.Command{
		Use:   "feedback --predicted <task.intent> --correct <task.intent> <text...>",
		Short: "Apply one correction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := parsePair(predicted)
			if err != nil {
				return err
			}
			corr, err := parsePair(correct)
			if err != nil {
				return err
			}
			if err := a.uc.LearnFromFeedback(cmd.Context(), intent.FeedbackInput{
				Text:      joinArgs(args),
				Predicted: pred,
				Correct:   corr,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "learned: %s -> %s\n", pred, corr)
			return nil
		},
	}
	cmd.Flags().StringVar(&predicted, "predicted", "", "intent the engine predicted, as task.intent")
	cmd.Flags().StringVar(&correct, "correct", "", "intent the text should map to, as task.intent")
	_ = cmd.MarkFlagRequired("predicted")
	_ = cmd.MarkFlagRequired("correct")
	return cmd
}

// exampleFile is one entry of an examples file. JSON files parse too.
type exampleFile struct {
	Text       string `yaml:"text"`
	TaskType   string `yaml:"task_type"`
	IntentType string `yaml:"intent_type"`
}

func (a *app) newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples <file>",
		Short: "Learn from a YAML or JSON list of labeled examples",
		Long: `Learn from a list of labeled examples:

  - text: show me all shipments
    task_type: order_management
    intent_type: get_orders`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := readExamples(args[0])
			if err != nil {
				return err
			}
			if err := a.uc.LearnFromExamples(cmd.Context(), examples); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "learned from %d examples\n", len(examples))
			return nil
		},
	}
}

func readExamples(path string) ([]intent.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading examples: %w", err)
	}
	var entries []exampleFile
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing examples: %w", err)
	}
	out := make([]intent.Example, len(entries))
	for i, e := range entries {
		p := intent.NewPair(e.TaskType, e.IntentType)
		out[i] = intent.Example{Text: e.Text, Task: p.Task, Intent: p.Intent}
	}
	return out, nil
}

func (a *app) newHistoryCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Report feedback accuracy over a trailing window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must be 0 or more")
			}
			return writeJSON(cmd.OutOrStdout(), a.uc.AnalyzeLearningHistory(cmd.Context(), days))
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "window in days, 0 for all history")
	return cmd
}

type mineOut struct {
	MessagesScanned int                 `json:"messages_scanned"`
	KeywordsAdded   map[string][]string `json:"keywords_added"`
	Total           int                 `json:"total"`
}

func (a *app) newMineCmd() *cobra.Command {
	var (
		lookback     time.Duration
		minFrequency int
		minScore     float64
	)
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine keywords from recently classified messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.uc.MineRecent(cmd.Context(), intent.MineInput{
				Lookback:     lookback,
				MinFrequency: minFrequency,
				MinScore:     minScore,
			})
			if err != nil {
				return err
			}
			added := make(map[string][]string, len(report.KeywordsAdded))
			for p, kws := range report.KeywordsAdded {
				added[p.String()] = kws
			}
			return writeJSON(cmd.OutOrStdout(), mineOut{
				MessagesScanned: report.MessagesScanned,
				KeywordsAdded:   added,
				Total:           report.Total(),
			})
		},
	}
	cmd.Flags().DurationVar(&lookback, "lookback", 0, "how far back to read messages (default from config)")
	cmd.Flags().IntVar(&minFrequency, "min-frequency", 0, "messages a token must appear in (default from config)")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "minimum classification score of a message (default from config)")
	return cmd
}
