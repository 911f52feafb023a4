package main

import (
	"fmt"
	"os"

	"palahian/database"
	"palahian/internal/config"
	"palahian/internal/seed"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	numBreeders     int
	chickensPerFarm int
	randSeed        int64
	migrateFirst    bool
)

var rootCmd = &cobra.Command{
	Use:   "palahian-seed",
	Short: "Development data tool for the Palahian database",
	Long: `Creates and removes development data in the database named by the DB_*
environment variables. A .env file in the working directory or two levels up
is loaded first.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnvFiles(".env", "../../.env")
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(database.MigrateDatabase)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert breeders, farms, bloodlines and chickens",
	Long: `Insert verified breeders, each with a farm, two bloodlines and a flock.

Examples:
  palahian-seed seed                              # defaults
  palahian-seed seed --breeders 50 --chickens 30  # bigger data set
  palahian-seed seed --rand-seed 2 --migrate      # second batch, migrating first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			if migrateFirst {
				if err := database.MigrateDatabase(db); err != nil {
					return err
				}
			}
			summary, err := seed.NewSeeder(db).Seed(seed.Options{
				Breeders:        numBreeders,
				ChickensPerFarm: chickensPerFarm,
				Seed:            randSeed,
			})
			if err != nil {
				return err
			}
			fmt.Printf("users=%d farms=%d bloodlines=%d chickens=%d\n",
				summary.Users, summary.Farms, summary.Bloodlines, summary.Chickens)
			return nil
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every seeded user and everything they own",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			removed, err := seed.NewSeeder(db).Clear()
			if err != nil {
				return err
			}
			fmt.Printf("removed %d seeded users\n", removed)
			return nil
		})
	},
}

func withDB(fn func(db *gorm.DB) error) error {
	db, err := database.Connect(config.LoadDatabase())
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}

func init() {
	seedCmd.Flags().IntVar(&numBreeders, "breeders", seed.DefaultBreeders, "Number of breeders to create")
	seedCmd.Flags().IntVar(&chickensPerFarm, "chickens", seed.DefaultChickensPerFarm, "Chickens per farm")
	seedCmd.Flags().Int64Var(&randSeed, "rand-seed", 1, "Random seed; also part of the seeded emails")
	seedCmd.Flags().BoolVar(&migrateFirst, "migrate", false, "Run migrations before seeding")

	rootCmd.AddCommand(migrateCmd, seedCmd, clearCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
