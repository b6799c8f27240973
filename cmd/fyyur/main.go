package main

import (
	"context"
	"net/http"

	"fyyur/internal/store"
	"fyyur/shared/go/logging"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.Fatal(err, "load config")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logging.SetGlobalLogger(logger)

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err, "open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := bootstrapDemoData(context.Background(), db, dataStore); err != nil {
		logger.Fatal(err, "bootstrap demo data")
	}

	handler := newHTTPHandler(cfg, dataStore)

	logger.Info("listening on " + cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
