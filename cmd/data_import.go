package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	"storefront.GO/service/seed"
)

var (
	seedFile  string
	seedForce bool
)

var dataImportCmd = &cobra.Command{
	Use:   "data:import",
	Short: "Load a catalog seed document into the database",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		file := seedFile
		if file == "" {
			file = config.AppConfig.SeedFile
		}
		f, err := os.Open(file)
		if err != nil {
			fmt.Printf("Failed to open seed file: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := seed.Import(db, f, seed.Options{Force: seedForce})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Seed Report ===
Categories:     %d
Products:       %d
Skipped:        %d
Attributes:     %d
Prices:         %d
Gallery rows:   %d
Total time:     %s
===================
`, res.Categories, res.Products, res.Skipped, res.Attributes, res.Prices,
			res.GalleryImages, res.TotalTime.Round(time.Millisecond))
	},
}

func init() {
	dataImportCmd.Flags().StringVarP(&seedFile, "file", "f", "", "seed document path (default from SEED_FILE)")
	dataImportCmd.Flags().BoolVar(&seedForce, "force", false, "rewrite products that already exist")
	rootCmd.AddCommand(dataImportCmd)
}
