package handlers

import (
	"Townplate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterBookingRoutes(router *gin.RouterGroup, bookingController *controllers.BookingController) {
	bookingGroup := router.Group("/bookings")
	{
		bookingGroup.POST("", bookingController.OpenBooking)
		bookingGroup.GET("/:id", bookingController.GetBooking)
		bookingGroup.POST("/:id/submit", bookingController.SubmitBooking)
		bookingGroup.POST("/:id/confirm", bookingController.ConfirmBooking)
		bookingGroup.DELETE("/:id", bookingController.CloseBooking)
	}
}
