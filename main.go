package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gosolvers/dpll/solver"
)

var (
	timeout time.Duration
	verbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dpll file.cnf",
		Short:        "Decide satisfiability of a DIMACS CNF formula",
		Long:         "dpll reads a boolean formula in DIMACS CNF format and decides its satisfiability\nwith a DPLL search accelerated by two-watched-literal propagation.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         solveFunc,
	}
	cmd.Flags().DurationVar(&timeout, "timeout", solver.DefaultTimeout, "time budget for the search")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the model and solving statistics")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func solveFunc(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	path := args[0]
	fmt.Printf("c solving %s\n", path)
	pb, err := parse(path)
	if err != nil {
		return err
	}
	nbClauses := len(pb.Clauses)
	log.Debugf("parsed %d vars, %d clauses", pb.NbVars, nbClauses)
	s := solver.New(pb, solver.Options{Timeout: timeout})
	log.Debugf("subsumption removed %d clauses, %d remain", s.Stats.NbSubsumed, len(pb.Clauses))
	start := time.Now()
	status := s.Solve()
	elapsed := time.Since(start)
	if verbose {
		s.OutputModel()
	}
	report(path, pb.NbVars, nbClauses, status, elapsed)
	if verbose {
		reportStats(s.Stats)
	}
	return nil
}

func parse(path string) (*solver.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	pb, err := solver.ParseCNF(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse DIMACS file %q", path)
	}
	return pb, nil
}

func report(path string, nbVars, nbClauses int, status solver.Status, elapsed time.Duration) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Vars", "Clauses", "Result", "Time"})
	table.Append([]string{
		path,
		strconv.Itoa(nbVars),
		strconv.Itoa(nbClauses),
		status.String(),
		elapsed.Round(time.Microsecond).String(),
	})
	table.Render()
}

func reportStats(stats solver.Stats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Decisions", "Propagations", "Conflicts", "Pure Lits", "Subsumed", "Max Depth"})
	table.Append([]string{
		strconv.Itoa(stats.NbDecisions),
		strconv.Itoa(stats.NbPropagations),
		strconv.Itoa(stats.NbConflicts),
		strconv.Itoa(stats.NbPureLits),
		strconv.Itoa(stats.NbSubsumed),
		strconv.Itoa(stats.MaxDepth),
	})
	table.Render()
}
