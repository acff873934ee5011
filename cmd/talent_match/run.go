package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/config"
	"github.com/kartika/talent-match-intel/internal/db"
	"github.com/kartika/talent-match-intel/internal/observability"
	"github.com/kartika/talent-match-intel/internal/pipeline"
	"github.com/kartika/talent-match-intel/internal/profile"
	"github.com/kartika/talent-match-intel/internal/report"
	"github.com/kartika/talent-match-intel/internal/types"
)

// defaultTimeoutSeconds is the wall-clock budget applied when neither the
// config file nor --timeout sets one.
const defaultTimeoutSeconds = 300

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run one talent-match scoring pass end-to-end",
	Long: `Selects the benchmark cohort, derives per-trait baselines, scores every
employee's traits against them, rolls trait scores up to group and final
match rates, and prints the ranked result.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScoringCmd,
}

var (
	runConfigPath       string
	runRoleName         string
	runJobLevel         string
	runRolePurpose      string
	runBenchmarkIDs     []string
	runCatalogPath      string
	runOutputPath       string
	runExcludeBenchmark bool
	runVerbose          bool
	runTimeoutSeconds   int
	runAPIKey           string
	runDatabaseURL      string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runRoleName, "role-name", "r", "", "Vacancy role name")
	runCommand.Flags().StringVarP(&runJobLevel, "job-level", "l", "", "Vacancy job level")
	runCommand.Flags().StringVarP(&runRolePurpose, "role-purpose", "p", "", "Vacancy role purpose")
	runCommand.Flags().StringSliceVarP(&runBenchmarkIDs, "benchmark-ids", "b", nil, "Explicit benchmark employee IDs (comma-separated; top-rating predicate when omitted)")
	runCommand.Flags().StringVarP(&runCatalogPath, "catalog", "c", "", "Path to a trait catalog JSON file (built-in catalog when omitted)")
	runCommand.Flags().StringVarP(&runOutputPath, "output", "o", "", "Write the full result as CSV to this path")
	runCommand.Flags().BoolVar(&runExcludeBenchmark, "exclude-benchmark", false, "Drop benchmark members from the candidate output")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().IntVar(&runTimeoutSeconds, "timeout", 0, "Wall-clock budget in seconds for the run (default 300)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key for the job-profile narrative (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for the talent data source
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runScoringCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("role-name") {
		cfg.RoleName = runRoleName
	}
	if cmd.Flags().Changed("job-level") {
		cfg.JobLevel = runJobLevel
	}
	if cmd.Flags().Changed("role-purpose") {
		cfg.RolePurpose = runRolePurpose
	}
	if cmd.Flags().Changed("benchmark-ids") {
		cfg.BenchmarkIDs = runBenchmarkIDs
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = runCatalogPath
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutputPath
	}
	if cmd.Flags().Changed("exclude-benchmark") {
		cfg.ExcludeBenchmark = runExcludeBenchmark
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = runTimeoutSeconds
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		TimeoutSeconds: defaultTimeoutSeconds,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required vacancy fields
	role := types.RoleInput{
		RoleName:    cfg.RoleName,
		JobLevel:    cfg.JobLevel,
		RolePurpose: cfg.RolePurpose,
	}
	if err := role.Validate(); err != nil {
		return fmt.Errorf("--role-name, --job-level and --role-purpose are required (via flag or config): %w", err)
	}

	// Step 5: Credentials from env when flags are absent
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Step 6: Wall-clock budget
	ctx := context.Background()
	if cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	// Step 7: Trait catalog
	cat := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return err
		}
		cat = loaded
		if cfg.Verbose {
			fmt.Printf("[VERBOSE] Loaded catalog with %d traits from %s\n", len(cat.Traits), cfg.Catalog)
		}
	}

	// Step 8: Data source
	fmt.Printf("Step 1/4: Connecting to talent database...\n")
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	// Step 9: Optional AI job-profile narrative (passthrough; scoring never
	// depends on it)
	if cfg.APIKey != "" {
		fmt.Printf("Step 2/4: Generating job-profile narrative...\n")
		if narrative, err := generateNarrative(ctx, cfg.APIKey, role); err != nil {
			fmt.Printf("Warning: job-profile narrative failed: %v\n", err)
			fmt.Printf("Continuing without narrative...\n")
		} else {
			fmt.Printf("\n%s\n\n", narrative)
		}
	} else {
		fmt.Printf("Step 2/4: Skipping job-profile narrative (no API key configured)\n")
	}

	// Step 10: Scoring run
	fmt.Printf("Step 3/4: Scoring population against benchmark...\n")
	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Role:             role,
		Catalog:          cat,
		Source:           database,
		BenchmarkIDs:     cfg.BenchmarkIDs,
		ExcludeBenchmark: cfg.ExcludeBenchmark,
		Verbose:          cfg.Verbose,
	})
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}

	// Step 11: Report
	fmt.Printf("Step 4/4: Assembled %d result rows for %d employees (job vacancy %s)\n",
		len(result.Rows), len(result.Ranked), result.JobVacancyID)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRankedEmployees(result.Ranked)
	printer.PrintInsights(result.Insights)
	if cfg.Verbose {
		traitOrder := make([]string, 0, len(cat.Traits))
		for _, tv := range cat.Traits {
			traitOrder = append(traitOrder, tv.Name)
		}
		printer.PrintBaselines(result.Baselines, traitOrder)
	}

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, result.Rows); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.Rows), cfg.Output)
	}

	return nil
}

// generateNarrative runs the thin narrative collaborator for one vacancy.
func generateNarrative(ctx context.Context, apiKey string, role types.RoleInput) (string, error) {
	generator, err := profile.NewGenerator(ctx, apiKey)
	if err != nil {
		return "", err
	}
	defer func() { _ = generator.Close() }()

	return generator.Generate(ctx, role)
}
