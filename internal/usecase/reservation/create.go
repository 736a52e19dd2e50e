package reservation

import (
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	RequestID string

	Name   string
	Phone  string
	Date   string
	Time   string
	People string
	Note   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the submission and appends it to the store.
// Validation failures are business errors; store failures are returned as is.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*domain.Record, error) {

	rec := domain.Record{
		Name:   in.Name,
		Phone:  in.Phone,
		Date:   in.Date,
		Time:   in.Time,
		People: in.People,
		Note:   in.Note,
	}

	if err := domain.Validate(rec); err != nil {
		return nil, err
	}

	if err := uc.repo.Append(rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "reservation_created",
		Entity:    "reservation",
		RequestID: in.RequestID,
		Metadata: map[string]string{
			"date":   rec.Date,
			"time":   rec.Time,
			"people": rec.People,
		},
	})

	return &rec, nil
}
