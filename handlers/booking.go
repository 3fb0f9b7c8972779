package handlers

import (
	"errors"
	"net/http"
	"time"

	"premierlodge/models"
	"premierlodge/services/booking"
	"premierlodge/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Service booking.Service
}

func NewBookingHandler(service booking.Service) *BookingHandler {
	return &BookingHandler{Service: service}
}

type submitBookingRequest struct {
	Guest         models.Guest `json:"guest" binding:"required"`
	RoomID        string       `json:"roomId" binding:"required"`
	CheckIn       string       `json:"checkIn" binding:"required"`
	CheckOut      string       `json:"checkOut" binding:"required"`
	PaidAmount    float64      `json:"paidAmount"`
	PaymentMethod string       `json:"paymentMethod" binding:"required"`
	PaymentStatus string       `json:"paymentStatus"`
	TotalAmount   float64      `json:"totalAmount"`
	BookingType   string       `json:"bookingType" binding:"required"`
}

// Submit runs one booking submission through the orchestrator.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req submitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.BookingType != models.BookingTypeCheckedIn && req.BookingType != models.BookingTypeReservation {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "bookingType must be \"Checked In\" or \"Reservation\"")
		return
	}
	checkIn, err := time.Parse(models.DateOnly, req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "checkIn must be a YYYY-MM-DD date")
		return
	}
	checkOut, err := time.Parse(models.DateOnly, req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "checkOut must be a YYYY-MM-DD date")
		return
	}

	in := booking.SubmitInput{
		Guest: req.Guest,
		Form: booking.Form{
			RoomID:        req.RoomID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			PaidAmount:    req.PaidAmount,
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: req.PaymentStatus,
			TotalAmount:   req.TotalAmount,
		},
		BookingType: req.BookingType,
	}

	if err := h.Service.Submit(c.Request.Context(), in); err != nil {
		switch {
		case errors.Is(err, booking.ErrSubmissionInFlight):
			utils.JSONError(c, http.StatusConflict, "submission rejected", err.Error())
		case errors.Is(err, booking.ErrCreateFailed):
			utils.JSONError(c, http.StatusBadGateway, "booking creation failed", err.Error())
		case errors.Is(err, booking.ErrMissingPaymentReference):
			utils.JSONError(c, http.StatusBadGateway, "payment could not be started", err.Error())
		case errors.Is(err, booking.ErrProviderUnavailable):
			utils.JSONError(c, http.StatusServiceUnavailable, "payment provider unavailable", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "submission failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submitted":       true,
		"awaitingPayment": h.Service.Submitting(),
	})
}
