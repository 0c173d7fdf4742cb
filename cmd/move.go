package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/pyme-segmenter/internal/application"
	"github.com/bnema/pyme-segmenter/internal/domain"
)

type moveOptions struct {
	resources []string
	from      string
	to        string
	skill     string
	yes       bool
	dryRun    bool
}

func newToPymeCmd(app *app) *cobra.Command {
	opts := &moveOptions{}

	cmd := &cobra.Command{
		Use:   "to-pyme",
		Short: "Move Residential resources into PYME for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMove(cmd, app, domain.DirectionToPyme, *opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.resources, "resource", nil, "Resource ID to move (repeatable)")
	cmd.Flags().StringVar(&opts.from, "from", "", "First PYME day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Last PYME day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.skill, "skill", domain.SkillPyme, "Target pool skill: "+strings.Join(domain.PoolMarkers(), " or "))
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the skill changes without applying them")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newToResidentialCmd(app *app) *cobra.Command {
	opts := &moveOptions{}

	cmd := &cobra.Command{
		Use:   "to-residential",
		Short: "Move PYME resources back to Residential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMove(cmd, app, domain.DirectionToResidential, *opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.resources, "resource", nil, "Resource ID to move (repeatable)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the skill changes without applying them")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func runMove(cmd *cobra.Command, app *app, direction domain.Direction, opts moveOptions) error {
	if err := app.start(cmd); err != nil {
		return err
	}
	engine := app.engine

	if direction == domain.DirectionToPyme {
		rng, err := parseRange(opts.from, opts.to, engine.Today())
		if err != nil {
			return err
		}
		if err := engine.SetDateRange(rng); err != nil {
			return err
		}
		if err := engine.SetTargetSkill(opts.skill); err != nil {
			return err
		}
	}

	source := direction.Source()
	for _, raw := range opts.resources {
		id := domain.ResourceID(strings.TrimSpace(raw))
		resource, err := engine.Resource(source, id)
		if err != nil {
			return err
		}
		if err := engine.ToggleSelection(source, resource, true); err != nil {
			return err
		}
	}

	if opts.dryRun {
		return writeDryRun(cmd, app, direction)
	}

	app.notifier.AssumeYes = opts.yes
	result, err := engine.RequestTransition(cmd.Context(), direction)
	if err != nil {
		return err
	}
	if !result.Confirmed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelado.")
		return nil
	}

	writeReport(cmd, result.Report)
	return nil
}

func parseRange(rawFrom, rawTo string, today domain.Date) (domain.DateRange, error) {
	from, err := domain.ParseDate(rawFrom)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("--from: %w", err)
	}
	to, err := domain.ParseDate(rawTo)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("--to: %w", err)
	}
	return domain.NewDateRange(from, to, today)
}

func writeDryRun(cmd *cobra.Command, app *app, direction domain.Direction) error {
	vm := app.engine.ViewModel()
	out := cmd.OutOrStdout()

	var deltas []application.SkillDelta
	if direction == domain.DirectionToPyme {
		deltas = application.PlanToPyme(selectedResources(app, direction), vm.Range, vm.TargetSkill, vm.Today)
	} else {
		var err error
		deltas, err = application.PlanToResidential(selectedResources(app, direction), vm.Today)
		if err != nil {
			return err
		}
	}

	for _, delta := range deltas {
		_, _ = fmt.Fprintf(out, "%s:\n", sanitizeForTerminal(string(delta.ResourceID)))
		for _, skill := range delta.Skills {
			end := skill.EndDate.String()
			if end == "" {
				end = "open"
			}
			_, _ = fmt.Fprintf(out, "  %s ratio=%d %s..%s\n", sanitizeForTerminal(skill.Skill), skill.Ratio, skill.StartDate, end)
		}
	}
	return nil
}

func selectedResources(app *app, direction domain.Direction) []domain.Resource {
	vm := app.engine.ViewModel()
	source := direction.Source()
	ids := vm.SelectedResidential
	if source == domain.PoolPyme {
		ids = vm.SelectedPyme
	}

	resources := make([]domain.Resource, 0, len(ids))
	for _, id := range ids {
		if resource, err := app.engine.Resource(source, id); err == nil {
			resources = append(resources, resource)
		}
	}
	return resources
}

func writeReport(cmd *cobra.Command, report application.ReconcileReport) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "schedule entries updated: %d\n", report.Patched)
	for _, failure := range report.Failures {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s on %s: %v\n",
			sanitizeForTerminal(string(failure.ResourceID)), failure.Date, failure.Err)
	}
}
