package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"tripplanner/internal/config"
	"tripplanner/internal/logging"
	"tripplanner/internal/modules/itinerary"
)

var (
	planReq        itinerary.TripRequest
	planPromptOnly bool
	planHTML       bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate one itinerary and print it",
	Example: `  tripplanner plan --from Delhi --to Goa --start 2025-01-10 --end 2025-01-15 \
    --budget 20000 --theme beach --travellers 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return runPlan(ctx, cmd)
	},
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planReq.Origin, "from", "", "origin city")
	f.StringVar(&planReq.Destination, "to", "", "destination city")
	f.StringVar(&planReq.StartDate, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&planReq.EndDate, "end", "", "end date (YYYY-MM-DD)")
	f.StringVar((*string)(&planReq.Budget), "budget", "", "total budget in INR")
	f.StringVar(&planReq.Theme, "theme", "", "travel theme, e.g. beach or heritage")
	f.StringVar((*string)(&planReq.Travellers), "travellers", "1", "number of travellers")
	f.BoolVar(&planPromptOnly, "prompt-only", false, "print the prompt without calling the model")
	f.BoolVar(&planHTML, "html", false, "print rendered HTML instead of Markdown")
}

func runPlan(ctx context.Context, cmd *cobra.Command) error {
	req := planReq.Normalize()
	if err := checkRequest(req); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if planPromptOnly {
		_, err := fmt.Fprintln(out, itinerary.BuildPrompt(req, nil))
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// The terminal run never needs the hand-off store, so skip Redis.
	cfg.Plans.RedisAddr = ""
	planner, cleanup, err := buildService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	plan, failure := planner.Plan(ctx, req)
	if failure != nil {
		return fmt.Errorf("%s (%s)", failure.Notice, failure.Reason)
	}
	if planHTML {
		_, err = fmt.Fprintln(out, plan.HTML)
		return err
	}
	_, err = fmt.Fprintln(out, plan.Markdown)
	return err
}

// checkRequest applies the same rules as the web form: the binding tags, then Validate.
func checkRequest(req itinerary.TripRequest) error {
	v := validator.New()
	v.SetTagName("binding")
	if err := v.Struct(req); err != nil {
		return itinerary.FieldErrorsFrom(err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return nil
}
