package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fznnorm/internal/ctxlog"
	"github.com/specialistvlad/fznnorm/internal/report"
	"github.com/specialistvlad/fznnorm/internal/resolve"
)

// Run loads both inputs, resolves every output variable and writes them.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	format, err := report.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}

	model := a.loadModel(ctx)
	sol, err := a.loadSolution(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Inputs loaded.",
		"symbols", len(model.Symbols),
		"outputs", len(model.Outputs),
		"values", len(sol.Values),
	)

	res := resolve.New(model, sol,
		resolve.WithMaxDepth(a.config.MaxDepth),
		resolve.WithDefault(a.config.DefaultValue),
	)

	var opts []report.Option
	if a.config.Objective {
		if sol.HasObjective {
			opts = append(opts, report.WithObjective(sol.Objective))
		} else {
			a.logger.Warn("Objective requested but the solver did not report one.")
		}
	}

	names := model.OutputNames()
	if len(names) == 0 {
		a.logger.Warn("No output variables declared, nothing to report.")
	}
	if err := report.New(a.outW, format, opts...).Write(ctx, res, names); err != nil {
		return fmt.Errorf("failed to report solution: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "reported", len(names))
	return nil
}
