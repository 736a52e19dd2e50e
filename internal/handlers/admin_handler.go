package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/reservation-api/internal/dto"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/httpresp"
	"github.com/BruksfildServices01/reservation-api/internal/middleware"
	"github.com/BruksfildServices01/reservation-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	list   *reservation.ListReservations
	export *reservation.ExportReservations
	backup *reservation.BackupReservations // nil when backups are not configured
	log    *slog.Logger
}

func NewAdminHandler(
	list *reservation.ListReservations,
	export *reservation.ExportReservations,
	backup *reservation.BackupReservations,
	log *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		list:   list,
		export: export,
		backup: backup,
		log:    log,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AdminHandler) List(c *gin.Context) {
	records, err := h.list.Execute(c.Request.Context(), middleware.RequestID(c))
	if err != nil {
		h.storageError(c, "read reservations failed", err)
		return
	}

	httpresp.RawJSON(c, http.StatusOK, dto.ReservationListJSON(records))
}

// ======================================================
// EXPORT
// ======================================================

func (h *AdminHandler) Export(c *gin.Context) {
	body, err := h.export.Execute(c.Request.Context(), middleware.RequestID(c))
	if err != nil {
		h.storageError(c, "export reservations failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// ======================================================
// BACKUP
// ======================================================

func (h *AdminHandler) Backup(c *gin.Context) {
	if h.backup == nil {
		httperr.Unavailable(c, "backup_disabled")
		return
	}

	key, err := h.backup.Execute(c.Request.Context(), middleware.RequestID(c))
	if err != nil {
		if httperr.IsBusiness(err, reservation.ErrCodeNothingToBackup) {
			httperr.Conflict(c, reservation.ErrCodeNothingToBackup)
			return
		}
		h.log.Error("backup reservations failed",
			"err", err,
			"request_id", middleware.RequestID(c),
		)
		_ = c.Error(err)
		httperr.Internal(c, "backup_failed")
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "key": key})
}

func (h *AdminHandler) storageError(c *gin.Context, msg string, err error) {
	h.log.Error(msg,
		"err", err,
		"request_id", middleware.RequestID(c),
	)
	_ = c.Error(err)
	httperr.Internal(c, "storage_error")
}
