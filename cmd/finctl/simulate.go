package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"finhealth/internal/config"
	"finhealth/internal/engine"
	"finhealth/internal/scenario"
	"finhealth/internal/validator"
)

var (
	flagFile    string
	flagNow     string
	flagSummary bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Compute a health snapshot from a scenario file",
	Long: "Decode a TOML scenario, run it through the health engine with the configured policy " +
		"and print the snapshot as JSON. Use --file - to read from stdin.",
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Scenario TOML file (- for stdin)")
	simulateCmd.Flags().StringVar(&flagNow, "now", "", "Evaluation date (YYYY-MM-DD), overrides the file")
	simulateCmd.Flags().BoolVar(&flagSummary, "summary", false, "Print a short text summary instead of JSON")
	_ = simulateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	var now time.Time
	if flagNow != "" {
		t, err := time.Parse(validator.DateLayout, flagNow)
		if err != nil {
			return fmt.Errorf("invalid --now %q: want YYYY-MM-DD", flagNow)
		}
		now = t
	}

	in, closeFn, err := openScenario(cmd, flagFile)
	if err != nil {
		return err
	}
	defer closeFn()

	sc, err := scenario.Decode(in, now)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	snap, err := engine.New(cfg.Policy).Compute(sc.Input, sc.Now)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagSummary {
		printSummary(out, snap)
		return nil
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func openScenario(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func printSummary(w io.Writer, s *engine.Snapshot) {
	fmt.Fprintf(w, "Score            %d/100\n", s.Score)
	fmt.Fprintf(w, "Net worth        %.2f\n", s.NetWorth)
	fmt.Fprintf(w, "Monthly burn     %.2f\n", s.MonthlyBurn)
	fmt.Fprintf(w, "Surplus          %.2f\n", s.Surplus)
	fmt.Fprintf(w, "Invest           %.2f\n", s.RecommendedInvestment)
	fmt.Fprintf(w, "Emergency months %.2f\n", s.EmergencyMonths)
	fmt.Fprintf(w, "Debt free        %s\n", s.DebtStrategy.FreedomDate)
	for _, g := range s.AnalyzedGoals {
		fmt.Fprintf(w, "Goal %-12s %s (%.2f/month)\n", g.Name, g.Status, g.RequiredMonthly)
	}
}
