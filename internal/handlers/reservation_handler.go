package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/httpresp"
	"github.com/BruksfildServices01/reservation-api/internal/middleware"
	"github.com/BruksfildServices01/reservation-api/internal/usecase/reservation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type ReservationHandler struct {
	create *reservation.CreateReservation
	log    *slog.Logger
}

func NewReservationHandler(
	create *reservation.CreateReservation,
	log *slog.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		create: create,
		log:    log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	People string `json:"people" binding:"required"`
	Note   string `json:"note"`
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapBindError(c, err)
		return
	}

	_, err := h.create.Execute(
		c.Request.Context(),
		reservation.CreateReservationInput{
			RequestID: middleware.RequestID(c),
			Name:      req.Name,
			Phone:     req.Phone,
			Date:      req.Date,
			Time:      req.Time,
			People:    req.People,
			Note:      req.Note,
		},
	)
	if err != nil {
		h.mapCreateErrors(c, err)
		return
	}

	httpresp.Acknowledge(c)
}

func mapBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &verrs):
		httperr.BadRequest(c, domain.ErrCodeMissingFields)
	case errors.As(err, &tooLarge):
		httperr.Write(c, http.StatusRequestEntityTooLarge, "payload_too_large")
	default:
		httperr.BadRequest(c, "invalid_json")
	}
}

func (h *ReservationHandler) mapCreateErrors(c *gin.Context, err error) {
	switch code := httperr.Code(err); code {
	case domain.ErrCodeMissingFields, domain.ErrCodeInvalidField:
		h.log.Info("reservation rejected",
			"code", code,
			"field", httperr.Field(err),
			"request_id", middleware.RequestID(c),
		)
		httperr.BadRequest(c, code)
	default:
		h.log.Error("append reservation failed",
			"err", err,
			"request_id", middleware.RequestID(c),
		)
		_ = c.Error(err)
		httperr.Internal(c, "storage_error")
	}
}
