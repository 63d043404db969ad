package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/emdist/emd"
	"github.com/katalvlaran/emdist/internal/problem"
	"github.com/katalvlaran/emdist/linprog"
	"github.com/katalvlaran/emdist/matrix"
)

// errProblemsFailed is returned when at least one problem in a file failed.
var errProblemsFailed = errors.New("some problems failed")

type solveFlags struct {
	file     string
	p        float64
	showFlow bool
	jobs     int
	tol      float64
	method   string
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the problems in a YAML file",
		Long: `Solve every problem in a YAML file and print its distance.

A problem gives weights_x and weights_y plus either a cost matrix or
points_x/points_y (one row per point) with an optional Minkowski order p.
Several problems may be listed under "problems:".

Examples:
  emd solve --file problem.yaml
  emd solve -f problems.yaml --flow --jobs 4
  emd solve -f points.yaml --p 1
  emd solve -f big.yaml --method network`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), g, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "problem file (YAML)")
	cmd.Flags().Float64Var(&f.p, "p", emd.DefaultP, "Minkowski order for point problems without p")
	cmd.Flags().BoolVar(&f.showFlow, "flow", false, "print the optimal flow matrix")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "max problems solved at once (0 = unlimited)")
	cmd.Flags().Float64Var(&f.tol, "tol", linprog.DefaultTolerance, "simplex optimality tolerance")
	cmd.Flags().StringVar(&f.method, "method", emd.MethodSimplex.String(), "solution method: simplex or network")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSolve(ctx context.Context, out, errOut io.Writer, g *globalFlags, f *solveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if math.IsNaN(f.tol) || math.IsInf(f.tol, 0) || f.tol <= 0 {
		return fmt.Errorf("--tol must be finite and > 0, got %g", f.tol)
	}
	method, err := emd.ParseMethod(f.method)
	if err != nil {
		return err
	}

	logger, cleanup := g.logger(errOut)
	defer func() { _ = cleanup() }()

	probs, err := problem.Load(f.file)
	if err != nil {
		return err
	}
	logger.Debug("loaded problems", "file", f.file, "count", len(probs), "method", method)

	solver := linprog.NewSimplex(linprog.WithTolerance(f.tol))
	start := time.Now()
	outcomes, err := problem.SolveAll(ctx, probs, f.jobs, f.p, emd.WithSolver(solver), emd.WithMethod(method))
	if err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			logger.Error("solve failed", "problem", o.Name, "error", o.Err)
			fmt.Fprintf(out, "%s: error: %v\n", o.Name, o.Err)
			continue
		}
		logger.Debug("solved", "problem", o.Name, "distance", o.Result.Distance)
		fmt.Fprintf(out, "%s: %.6g\n", o.Name, o.Result.Distance)
		if f.showFlow {
			writeFlow(out, o.Result.Flow)
		}
	}
	logger.Info("done", "problems", len(outcomes), "failed", failed, "elapsed", time.Since(start))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errProblemsFailed, failed, len(outcomes))
	}
	return nil
}

// writeFlow prints the flow one row per line with six significant digits,
// so solver round-off does not leak into the output.
func writeFlow(w io.Writer, flow *matrix.Dense) {
	for i := 0; i < flow.Rows(); i++ {
		row, _ := flow.Row(i)
		fmt.Fprint(w, "  [")
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%.6g", v)
		}
		fmt.Fprintln(w, "]")
	}
}
