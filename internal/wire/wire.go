package wire

import (
	"seat-booking/internal/adaptor"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/seatmap"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Service *usecase.Service
	Console *adaptor.Console
}

// Wiring initializes the seat map, services, and console front end.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	seats := seatmap.New()
	service := usecase.NewService(seats, repo, config, logger)
	console := adaptor.NewConsole(service, logger)

	return &App{
		Service: service,
		Console: console,
	}
}
