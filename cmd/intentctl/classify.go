package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"intent-engine/internal/intent"
)

func (a *app) newClassifyCmd() *cobra.Command {
	var task string
	cmd := &cobra.Command{
		Use:   "classify <text...>",
		Short: "Resolve text to a task, intent and score",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			known := intent.TaskType(task)
			if task != "" && !known.Valid() {
				return fmt.Errorf("%w: %s", intent.ErrUnknownTaskType, task)
			}
			res := a.uc.Classify(cmd.Context(), joinArgs(args), known)
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&task, "task", "", "skip task detection and classify within this task type")
	return cmd
}

type understandOut struct {
	Result      intent.Result `json:"result"`
	Fine        intent.Result `json:"fine"`
	Trusted     bool          `json:"trusted"`
	Description string        `json:"description"`
	Parameters  intent.Params `json:"parameters"`
}

func (a *app) newUnderstandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "understand <text...>",
		Short: "Classify, apply the trust threshold and extract parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.uc.Understand(cmd.Context(), joinArgs(args))
			params := out.Params
			if params == nil {
				params = intent.Params{}
			}
			return writeJSON(cmd.OutOrStdout(), understandOut{
				Result:      out.Result,
				Fine:        out.Fine,
				Trusted:     out.Trusted,
				Description: out.Description,
				Parameters:  params,
			})
		},
	}
}

func (a *app) newExtractCmd() *cobra.Command {
	var pair string
	cmd := &cobra.Command{
		Use:   "extract --intent <task.intent> <text...>",
		Short: "Extract the parameters of an intent from text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePair(pair)
			if err != nil {
				return err
			}
			params := a.uc.ExtractParameters(cmd.Context(), joinArgs(args), p.Task, p.Intent)
			if params == nil {
				params = intent.Params{}
			}
			return writeJSON(cmd.OutOrStdout(), params)
		},
	}
	cmd.Flags().StringVar(&pair, "intent", "", "target intent as task.intent")
	_ = cmd.MarkFlagRequired("intent")
	return cmd
}

func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <task.intent>",
		Short: "Print the description of an intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePair(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.uc.DescribeIntent(p.Task, p.Intent))
			return nil
		},
	}
}
