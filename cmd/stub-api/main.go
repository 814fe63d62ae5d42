package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"domainscout/internal/config"
	"domainscout/internal/logging"
	"domainscout/internal/stubapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	srv := stubapi.NewServer(logger, stubapi.NewSubscriptionStore())

	logger.Info("stub_listen", zap.String("addr", cfg.StubAddr))
	if err := http.ListenAndServe(cfg.StubAddr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
