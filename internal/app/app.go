package app

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"frogcasino_backend/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx := context.Background()
	l := s.ServiceProvider.Logger()
	defer func() { _ = l.Sync() }()

	r := s.ServiceProvider.Router(ctx)

	address := s.ServiceProvider.HTTPCfg().Address()
	l.Info("starting server", zap.String("address", address))

	err = http.ListenAndServe(address, r)
	if err != nil {
		l.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
