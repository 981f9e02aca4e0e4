package controllers

import (
	"errors"
	"net/http"
	"time"

	"Townplate/models"
	"Townplate/services"
	"Townplate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// confirmationDelay simulates the service provider's confirmation turnaround.
// The workflow itself only reacts to the Confirm signal, never to wall clock.
const confirmationDelay = 2 * time.Second

type BookingController struct {
	BookingService *services.BookingService
}

func NewBookingController() *BookingController {
	return &BookingController{
		BookingService: services.NewBookingService(),
	}
}

// OpenBookingRequest starts a workflow for one service.
type OpenBookingRequest struct {
	ServiceRef string `json:"service_ref" binding:"required"`
}

// SubmitBookingRequest carries the details form.
type SubmitBookingRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Date  string `json:"date"` // YYYY-MM-DD
}

// OpenBooking starts a fresh workflow in the details state.
func (ctl *BookingController) OpenBooking(c *gin.Context) {
	var req OpenBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workflow := ctl.BookingService.Open(req.ServiceRef)
	utils.SuccessResponse(c, http.StatusCreated, "Booking opened", workflow)
}

// GetBooking returns the workflow's current state and data.
func (ctl *BookingController) GetBooking(c *gin.Context) {
	workflow, err := ctl.BookingService.Get(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Booking fetched successfully", workflow)
}

// SubmitBooking validates the details form and moves the workflow to
// confirming. On success the simulated provider confirmation is scheduled;
// it fires the same Confirm signal an external collaborator would.
func (ctl *BookingController) SubmitBooking(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking := models.BookingRequest{
		Name:  req.Name,
		Phone: req.Phone,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		booking.Date = date
	}

	id := c.Param("id")
	workflow, err := ctl.BookingService.Submit(id, booking)
	if err != nil {
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"statusCode": http.StatusUnprocessableEntity,
				"message":    "Booking details failed validation",
				"errors":     fieldErrs,
			})
			return
		}
		c.Error(err)
		return
	}

	time.AfterFunc(confirmationDelay, func() {
		if _, err := ctl.BookingService.Confirm(id); err != nil {
			// The workflow was closed or confirmed through the callback first.
			utils.Logger.Debug("simulated confirmation skipped", zap.String("booking", id), zap.Error(err))
		}
	})

	utils.SuccessResponse(c, http.StatusOK, "Booking submitted, awaiting confirmation", workflow)
}

// ConfirmBooking applies the provider's confirmation signal.
func (ctl *BookingController) ConfirmBooking(c *gin.Context) {
	workflow, err := ctl.BookingService.Confirm(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Booking confirmed", workflow)
}

// CloseBooking discards the workflow and everything it collected.
func (ctl *BookingController) CloseBooking(c *gin.Context) {
	ctl.BookingService.Close(c.Param("id"))
	utils.SuccessResponse(c, http.StatusOK, "Booking closed", nil)
}
