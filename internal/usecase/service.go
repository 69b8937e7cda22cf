package usecase

import (
	"seat-booking/internal/data/repository"
	"seat-booking/internal/seatmap"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Ledger LedgerService
}

func NewService(seats *seatmap.SeatMap, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Ledger: NewLedgerService(seats, repo, log),
	}
}
