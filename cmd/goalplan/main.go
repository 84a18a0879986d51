package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/goalplan/internal/config"
	"github.com/rgehrsitz/goalplan/internal/dateparse"
	"github.com/rgehrsitz/goalplan/internal/domain"
	"github.com/rgehrsitz/goalplan/internal/output"
	"github.com/rgehrsitz/goalplan/internal/recommend"
	"github.com/rgehrsitz/goalplan/internal/tui"
)

// zerologAdapter implements calculation.Logger on top of the global
// zerolog logger.
type zerologAdapter struct{}

func (zerologAdapter) Debugf(format string, args ...any) { log.Debug().Msgf(format, args...) }
func (zerologAdapter) Infof(format string, args ...any)  { log.Info().Msgf(format, args...) }
func (zerologAdapter) Warnf(format string, args ...any)  { log.Warn().Msgf(format, args...) }
func (zerologAdapter) Errorf(format string, args ...any) { log.Error().Msgf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "goalplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "goalplan",
	Short: "Savings goal planning calculator",
	Long: `goalplan searches deposit and yield combinations that reach a savings
goal by a target withdrawal date and recommends the most achievable one.`,
}

var planCmd = &cobra.Command{
	Use:   "plan [plan-file]",
	Short: "Search deposit/yield scenarios that reach the goal",
	Long: `Run the scenario search from a YAML plan file or from flags.

Examples:
  goalplan plan plan.yaml
  goalplan plan --goal 120000 --date "jun 2030" --initial 10000 --max-deposit 500
  goalplan plan plan.yaml --format csv
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()

		input, err := resolveInput(cmd, args, now)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid plan input")
		}

		planner := recommend.NewPlanner()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			planner.Engine.SetLogger(zerologAdapter{})
			planner.Engine.Debug = true
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		result, err := planner.Run(cmd.Context(), input, now)
		if err != nil {
			log.Fatal().Err(err).Msg("plan run failed")
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatal().Msgf("unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
		if tf, ok := formatter.(*output.TableFormatter); ok {
			if currency, _ := cmd.Flags().GetString("currency"); currency != "" {
				tf.Currency = currency
			}
		}

		rendered, err := formatter.Format(result)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to format result")
		}
		fmt.Print(string(rendered))
	},
}

// resolveInput builds the plan input from a plan file argument or, if no
// file is given, from the plan flags.
func resolveInput(cmd *cobra.Command, args []string, now time.Time) (*domain.PlanInput, error) {
	if len(args) == 1 {
		return config.NewInputParser().LoadFromFile(args[0], now)
	}

	goalStr, _ := cmd.Flags().GetString("goal")
	dateStr, _ := cmd.Flags().GetString("date")
	initialStr, _ := cmd.Flags().GetString("initial")
	maxDeposit, _ := cmd.Flags().GetInt("max-deposit")

	if goalStr == "" || dateStr == "" {
		return nil, fmt.Errorf("either a plan file or both --goal and --date are required")
	}

	goal, err := decimal.NewFromString(goalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --goal value %q: %w", goalStr, err)
	}
	withdraw, err := dateparse.Parse(dateStr)
	if err != nil {
		return nil, err
	}
	initial, err := decimal.NewFromString(initialStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --initial value %q: %w", initialStr, err)
	}

	input := &domain.PlanInput{
		Goal:           goal,
		WithdrawDate:   withdraw,
		InitialCapital: initial,
		MaxDeposit:     maxDeposit,
	}
	if err := input.Validate(now); err != nil {
		return nil, err
	}
	return input, nil
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Collect plan inputs interactively",
	Run: func(cmd *cobra.Command, args []string) {
		program := tea.NewProgram(tui.NewModel(time.Now()))
		if _, err := program.Run(); err != nil {
			log.Fatal().Err(err).Msg("prompt failed")
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := config.NewInputParser().LoadFromFile(args[0], time.Now()); err != nil {
			log.Fatal().Err(err).Msg("plan file is invalid")
		}
		fmt.Printf("Plan file %s is valid\n", args[0])
	},
}

func init() {
	planCmd.Flags().String("goal", "", "Savings goal amount")
	planCmd.Flags().String("date", "", "Target withdrawal date (e.g. \"jun 2030\", \"2030-06\")")
	planCmd.Flags().String("initial", "0", "Initial capital (may be negative)")
	planCmd.Flags().Int("max-deposit", 0, "Maximum monthly deposit (negative means monthly withdrawal)")
	planCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	planCmd.Flags().String("currency", "", "ISO 4217 currency code for table amounts (default USD)")
	planCmd.Flags().Bool("debug", false, "Enable debug output for the scenario search")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
