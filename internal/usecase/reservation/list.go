package reservation

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
)

type ListReservations struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewListReservations(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ListReservations {
	return &ListReservations{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	requestID string,
) ([]domain.Record, error) {

	records, err := uc.repo.ReadAll()
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "reservations_listed",
		Entity:    "reservation",
		RequestID: requestID,
		Metadata:  map[string]int{"count": len(records)},
	})

	return records, nil
}
