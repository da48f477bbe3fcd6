package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/fznnorm/internal/ctxlog"
	"github.com/specialistvlad/fznnorm/internal/fzn"
	"github.com/specialistvlad/fznnorm/internal/solution"
)

// loadModel reads the declaration file. Any failure is reported and an
// empty or partial model is returned in its place.
func (a *App) loadModel(ctx context.Context) *fzn.Model {
	logger := ctxlog.FromContext(ctx)

	model, err := a.parseModel(ctx)
	if err != nil {
		logger.Error("Parsing declarations failed, continuing with what was read.", "path", a.config.ModelPath, "error", err)
	}
	if model == nil {
		model = fzn.NewModel()
	}
	return model
}

func (a *App) parseModel(ctx context.Context) (*fzn.Model, error) {
	f, err := os.Open(a.config.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open declarations: %w", err)
	}
	defer f.Close()

	return fzn.Parse(ctxlog.With(ctx, "path", a.config.ModelPath), f, fzn.WithOutputMarkers(a.config.OutputMarkers...))
}

// loadSolution reads the solver output. Unlike the declarations, a solution
// that cannot be read ends the run.
func (a *App) loadSolution(ctx context.Context) (*solution.Solution, error) {
	f, err := os.Open(a.config.SolutionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open solution: %w", err)
	}
	defer f.Close()

	sol, err := solution.Parse(ctxlog.With(ctx, "path", a.config.SolutionPath), f, solution.WithReservedKeys(a.config.ReservedKeys...))
	if err != nil {
		return nil, err
	}
	return sol, nil
}
