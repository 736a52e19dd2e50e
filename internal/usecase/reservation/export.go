package reservation

import (
	"bytes"
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
)

type ExportReservations struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewExportReservations(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExportReservations {
	return &ExportReservations{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns the raw store file. A store that was never written to
// exports as its header alone.
func (uc *ExportReservations) Execute(
	ctx context.Context,
	requestID string,
) ([]byte, error) {

	var buf bytes.Buffer
	n, err := uc.repo.Snapshot(&buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		buf.WriteString(domain.Header + "\n")
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "reservations_exported",
		Entity:    "reservation",
		RequestID: requestID,
		Metadata:  map[string]int{"bytes": buf.Len()},
	})

	return buf.Bytes(), nil
}
