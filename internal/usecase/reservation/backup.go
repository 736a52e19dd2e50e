package reservation

import (
	"bytes"
	"context"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/timezone"
)

const ErrCodeNothingToBackup = "nothing_to_backup"

// Uploader stores a named blob and returns the key it was stored under.
type Uploader interface {
	Upload(ctx context.Context, name string, body []byte) (string, error)
}

type BackupReservations struct {
	repo     domain.Repository
	uploader Uploader
	audit    *audit.Dispatcher
	timezone string
}

func NewBackupReservations(
	repo domain.Repository,
	uploader Uploader,
	audit *audit.Dispatcher,
	tz string,
) *BackupReservations {
	return &BackupReservations{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
		timezone: tz,
	}
}

// Execute uploads a snapshot of the store and returns the object key.
func (uc *BackupReservations) Execute(
	ctx context.Context,
	requestID string,
) (string, error) {

	var buf bytes.Buffer
	n, err := uc.repo.Snapshot(&buf)
	if err != nil {
		return "", err
	}
	if n == 0 || !hasRecords(buf.Bytes()) {
		return "", httperr.ErrBusiness(ErrCodeNothingToBackup)
	}

	name := "reservations-" + timezone.NowIn(uc.timezone).Format("20060102-150405") + ".csv"
	key, err := uc.uploader.Upload(ctx, name, buf.Bytes())
	if err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "reservations_backed_up",
		Entity:    "reservation",
		RequestID: requestID,
		Metadata:  map[string]any{"key": key, "bytes": n},
	})

	return key, nil
}

// hasRecords reports whether a snapshot holds anything besides the header.
func hasRecords(snapshot []byte) bool {
	rest := bytes.TrimPrefix(snapshot, []byte(domain.Header))
	return len(bytes.TrimSpace(rest)) > 0
}
