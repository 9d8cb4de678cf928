// Package cli holds the operator review commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/service/suggestion"
)

// ReviewService is the subset of the suggestion service the review
// commands need.
type ReviewService interface {
	List(ctx context.Context, in suggestion.ListInput) ([]domain.SuggestionView, error)
	UpdateState(ctx context.Context, in suggestion.UpdateStateInput) error
}

// Opener connects to the stores on demand. The returned func releases them.
type Opener func(ctx context.Context) (ReviewService, func(), error)

// notesWidth truncates notes in the list table.
const notesWidth = 40

// NewReviewCmd builds the review command tree.
func NewReviewCmd(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "review",
		Short:         "Review case suggestions from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(listCmd(open))
	root.AddCommand(transitionCmd(open, "approve", domain.StateApproved))
	root.AddCommand(transitionCmd(open, "reject", domain.StateRejected))
	root.AddCommand(setStateCmd(open))

	return root
}

func listCmd(open Opener) *cobra.Command {
	var in suggestion.ListInput

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			views, err := svc.List(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("list suggestions: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No suggestions found.")
				return nil
			}
			return printTable(out, views)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Term, "term", "", "substring of case number or notes")
	f.StringVar(&in.Date, "date", "", "creation day (YYYY-MM-DD, UTC)")
	f.StringVar(&in.State, "state", "", "exact state")
	f.StringVar(&in.AgentID, "agent", "", "agent id")
	f.StringVar(&in.Top, "top", "", "maximum rows (default 50, max 200)")
	f.StringVar(&in.Sort, "sort", "desc", "sort by creation time: asc or desc")

	return cmd
}

func transitionCmd(open Opener, use string, state domain.State) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: fmt.Sprintf("Mark a suggestion as %s", state),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, open, args[0], string(state), notes)
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "replace the stored notes")
	return cmd
}

func setStateCmd(open Opener) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "set-state <id> <state>",
		Short: "Move a suggestion to any configured state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, open, args[0], args[1], notes)
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "replace the stored notes")
	return cmd
}

func runUpdate(cmd *cobra.Command, open Opener, rawID, state, notes string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid id %q: must be a positive integer", rawID)
	}

	svc, closeFn, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	in := suggestion.UpdateStateInput{ID: id, State: state}
	if notes != "" {
		in.Notes = &notes
	}

	if err := svc.UpdateState(cmd.Context(), in); err != nil {
		var ise *domain.InvalidStateError
		switch {
		case errors.As(err, &ise):
			return fmt.Errorf("invalid state %q\nValid states: %s", ise.Received, joinStates(ise.Allowed))
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("suggestion %d not found", id)
		default:
			return fmt.Errorf("update suggestion %d: %w", id, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Suggestion %d is now %s\n", id, stateLabel(domain.State(strings.ToLower(strings.TrimSpace(state)))))
	return nil
}

func printTable(out io.Writer, views []domain.SuggestionView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCASE\tSTATE\tAGENT\tCREATED\tNOTES")
	for _, v := range views {
		notes := ""
		if v.Notes != nil {
			notes = truncate(*v.Notes, notesWidth)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			v.CaseNumber,
			stateLabel(v.State),
			v.AgentName,
			v.CreatedAt.UTC().Format(time.DateTime),
			notes,
		)
	}
	return w.Flush()
}

func stateLabel(s domain.State) string {
	switch s {
	case domain.StateApproved:
		return color.New(color.FgGreen).Sprint(s)
	case domain.StateRejected:
		return color.New(color.FgRed).Sprint(s)
	case domain.StatePending:
		return color.New(color.FgYellow).Sprint(s)
	default:
		return string(s)
	}
}

func joinStates(states []domain.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
