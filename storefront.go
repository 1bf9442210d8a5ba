//go:build !cli
// +build !cli

package main

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	graphqlApi "storefront.GO/api/graphql"
	"storefront.GO/config"
	"storefront.GO/core/log"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	db, err := config.NewDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get DB instance")
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Str("driver", config.DriverName()).Msg("database connection successful")

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSOrigins(),
	}))

	graphqlApi.RegisterGraphQLRoutes(e, db)

	figure.NewFigure(config.AppConfig.AppName, "", true).Print()
	log.Info().Str("port", config.AppConfig.Port).Msg("server running")
	e.Logger.Fatal(e.Start(":" + config.AppConfig.Port))
}
