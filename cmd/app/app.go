package main

import (
	"os"

	"github.com/priyansh911911/Furniture-B/internal/app"
	config "github.com/priyansh911911/Furniture-B/internal/cfg"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

//	@title			Furniture-B Catalog API
//	@version		1.0
//	@description	Каталог мебельного магазина: товары, категории, заявки и обратная связь.
//	@BasePath		/api
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
