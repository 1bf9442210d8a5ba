package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"storefront.GO/config"
	dbfs "storefront.GO/db"
	catalogEntity "storefront.GO/model/entity/catalog"
	salesEntity "storefront.GO/model/entity/sales"
)

var dbSetupCmd = &cobra.Command{
	Use:   "db:setup",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		if config.DriverName() == "sqlite" {
			err = db.AutoMigrate(
				&catalogEntity.Category{},
				&catalogEntity.Product{},
				&catalogEntity.Attribute{},
				&catalogEntity.AttributeItem{},
				&catalogEntity.ProductAttribute{},
				&catalogEntity.GalleryImage{},
				&catalogEntity.Price{},
				&salesEntity.Order{},
				&salesEntity.OrderItem{},
			)
			if err != nil {
				fmt.Printf("Migration failed: %v\n", err)
				return
			}
			fmt.Println("Schema up to date (sqlite).")
			return
		}

		sqldb, err := db.DB()
		if err != nil {
			fmt.Printf("Failed to get DB instance: %v\n", err)
			return
		}
		driver, err := migratemysql.WithInstance(sqldb, &migratemysql.Config{})
		if err != nil {
			fmt.Printf("Migration driver failed: %v\n", err)
			return
		}
		source, err := iofs.New(dbfs.Migrations, "migrations")
		if err != nil {
			fmt.Printf("Migration source failed: %v\n", err)
			return
		}
		m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
		if err != nil {
			fmt.Printf("Migration setup failed: %v\n", err)
			return
		}
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			fmt.Printf("Migration failed: %v\n", err)
			return
		}
		fmt.Println("Schema up to date (mysql).")
	},
}

func init() {
	rootCmd.AddCommand(dbSetupCmd)
}
