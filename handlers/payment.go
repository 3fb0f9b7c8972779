package handlers

import (
	"errors"
	"net/http"

	transactionsRepo "premierlodge/database/repository/transactions"
	"premierlodge/services/booking"
	"premierlodge/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Service booking.Service
	Audit   transactionsRepo.PaymentTransactionRepository
}

func NewPaymentHandler(service booking.Service, audit transactionsRepo.PaymentTransactionRepository) *PaymentHandler {
	return &PaymentHandler{Service: service, Audit: audit}
}

type paymentOutcomeRequest struct {
	Reference string `json:"reference" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// Callback receives the provider's outcome for a launched checkout. A
// cancelled payment leaves the already-created booking in place.
func (h *PaymentHandler) Callback(c *gin.Context) {
	var req paymentOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	settled := req.Status == "success"
	if err := h.Service.ResolvePayment(req.Reference, settled); err != nil {
		if errors.Is(err, booking.ErrUnknownReference) {
			utils.JSONError(c, http.StatusNotFound, "unknown payment reference", req.Reference)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"resolved": true, "settled": settled})
}

// GuestTransactions lists the audit trail for one guest.
func (h *PaymentHandler) GuestTransactions(c *gin.Context) {
	if h.Audit == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "audit trail unavailable", "no transaction store configured")
		return
	}
	records, err := h.Audit.GetByGuestID(c.Request.Context(), c.Param("guestID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load transactions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": records})
}
