package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trafficgen/trafficgen/eval"
	"github.com/trafficgen/trafficgen/eval/scenario"
	"github.com/trafficgen/trafficgen/eval/synth"
)

var (
	// CLI flags for the evaluation pipeline
	seed           int64    // Seed for synthetic batch generation
	duration       float64  // Simulation duration per run (seconds)
	logLevel       string   // Log verbosity level
	policySpecs    []string // Policies as name=type pairs
	scenarioKeys   []string // Climate scenario keys to evaluate
	scenarioConfig string   // Optional YAML file replacing the scenario catalog
	objective      string   // Best-policy objective
	csvOut         string   // Optional CSV summary export path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "trafficgen",
	Short: "Policy evaluation engine for traffic management under climate stress",
}

// parsePolicies turns name=type flag entries into policies. An entry with
// no "=" uses the name as both.
func parsePolicies(specs []string) ([]synth.Policy, error) {
	policies := make([]synth.Policy, 0, len(specs))
	for _, spec := range specs {
		name, typ, found := strings.Cut(spec, "=")
		if name == "" {
			return nil, fmt.Errorf("invalid policy spec %q: want name=type", spec)
		}
		if !found {
			typ = name
		}
		policies = append(policies, synth.Policy{Name: name, Type: typ})
	}
	return policies, nil
}

// loadCatalog selects the scenario catalog: the YAML override when given,
// the built-in defaults otherwise.
func loadCatalog() (*scenario.Catalog, error) {
	if scenarioConfig == "" {
		return scenario.DefaultCatalog(), nil
	}
	return scenario.Load(scenarioConfig)
}

// evaluateCmd runs the full pipeline: synthetic simulation per
// policy x scenario, metric reduction into the results table, then
// dominance analysis and statistics over the table.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate policies across climate scenarios and report results",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)

		policies, err := parsePolicies(policySpecs)
		if err != nil {
			return err
		}
		if len(policies) == 0 {
			return fmt.Errorf("no policies given")
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		keys := scenarioKeys
		if len(keys) == 0 {
			keys = catalog.Names()
		}

		logrus.Infof("Evaluating %d policies over %d scenarios (seed=%d, duration=%.0fs)",
			len(policies), len(keys), seed, duration)

		generator := synth.NewGenerator(seed)
		table := eval.NewResultsTable()
		for _, p := range policies {
			for _, key := range keys {
				sc, err := catalog.Get(key)
				if err != nil {
					return err
				}
				batch := generator.Run(p, sc, duration)
				metrics := eval.ComputeMetrics(batch)
				meta := map[string]string{"run_id": batch.RunID, "policy_type": p.Type}
				if err := table.Add(p.Name, sc.Key, metrics, meta); err != nil {
					return err
				}
			}
		}

		return report(cmd, table)
	},
}

// report prints the evaluation artifacts and writes the optional CSV export.
func report(cmd *cobra.Command, table *eval.ResultsTable) error {
	out := cmd.OutOrStdout()

	byPolicy := table.MetricsByPolicy()
	best, err := eval.BestPolicy(byPolicy, objective)
	if err != nil {
		return err
	}
	if best != "" {
		fmt.Fprintf(out, "Best policy (%s): %s\n\n", objective, best)
	}

	fmt.Fprintln(out, eval.OptimizationReport(byPolicy))

	if table.Len() >= 2 {
		stats, err := eval.StatisticalReport(table, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, stats)
	} else {
		logrus.Warn("Only one policy evaluated; skipping statistical report")
	}

	if csvOut != "" {
		if err := writeSummaryCSV(csvOut, table); err != nil {
			return err
		}
		logrus.Infof("Wrote summary CSV to %s", csvOut)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	evaluateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for synthetic batch generation")
	evaluateCmd.Flags().Float64Var(&duration, "duration", 3600, "Simulation duration per run (seconds)")
	evaluateCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	evaluateCmd.Flags().StringSliceVar(&policySpecs, "policies", []string{
		"adaptive-signals=Signal Timing Optimization",
		"congestion-pricing=Road Pricing Strategy",
	}, "Policies to evaluate, as name=type pairs")
	evaluateCmd.Flags().StringSliceVar(&scenarioKeys, "scenarios", nil, "Climate scenario keys (default: all in catalog)")
	evaluateCmd.Flags().StringVar(&scenarioConfig, "scenario-config", "", "YAML file replacing the scenario catalog")
	evaluateCmd.Flags().StringVar(&objective, "objective", "composite", "Best-policy objective (composite, delay, emissions, throughput, speed)")
	evaluateCmd.Flags().StringVar(&csvOut, "out", "", "Path for CSV summary export")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(scenariosCmd)
}
