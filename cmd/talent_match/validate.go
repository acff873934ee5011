package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/db"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a trait catalog and check it against the source schema",
	Long: `Validates a trait catalog file (JSON Schema plus structural constraints).
When a database is reachable, also compares the catalog's source columns
against the live profiles_psych schema and reports traits that would never
produce observations.`,
	RunE: runValidateCmd,
}

var (
	validateCatalogPath string
	validateDatabaseURL string
)

func init() {
	validateCommand.Flags().StringVarP(&validateCatalogPath, "catalog", "c", "", "Path to a trait catalog JSON file (built-in catalog when omitted)")
	validateCommand.Flags().StringVar(&validateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	cat := catalog.Default()
	if validateCatalogPath != "" {
		loaded, err := catalog.Load(validateCatalogPath)
		if err != nil {
			return err
		}
		cat = loaded
		fmt.Printf("Catalog %s is valid: %d traits in %d groups\n",
			validateCatalogPath, len(cat.Traits), len(cat.Groups()))
	} else {
		if err := cat.Validate(); err != nil {
			return err
		}
		fmt.Printf("Built-in catalog is valid: %d traits in %d groups\n",
			len(cat.Traits), len(cat.Groups()))
	}

	databaseURL := validateDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		fmt.Printf("No database configured; skipping source schema check\n")
		return nil
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	_, columns, err := database.FetchTraitRecords(ctx)
	if err != nil {
		return err
	}

	if unmapped := cat.UnmappedTraits(columns); len(unmapped) > 0 {
		fmt.Printf("Warning: %d catalog traits have no source column and will never produce observations:\n", len(unmapped))
		for _, name := range unmapped {
			fmt.Printf("  - %s\n", name)
		}
	} else {
		fmt.Printf("All catalog traits map to source columns\n")
	}

	return nil
}
