// controllers/booking_controller.go
package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"locker-booking/services"
)

type BookingController struct {
	BookingSvc *services.BookingService
	log        *slog.Logger
}

func NewBookingController(svc *services.BookingService, log *slog.Logger) *BookingController {
	return &BookingController{BookingSvc: svc, log: log.With(slog.String("controller", "bookings"))}
}

// GetBookings lists every booking, or only the guest's when ?Email= is set.
func (bc *BookingController) GetBookings(c *gin.Context) {
	email := c.Query("Email")
	if email == "" {
		listAll(c, bc.log, bc.BookingSvc.List)
		return
	}

	bookings, err := bc.BookingSvc.ByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	getOne(c, bc.log, bc.BookingSvc.Get)
}

// CreateBooking books a place. Overlapping an existing booking of the same
// place answers 400 with the colliding boundaries listed under errors.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	createOne(c, bc.log, bc.BookingSvc.Create)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	deleteOne(c, bc.log, bc.BookingSvc.Delete)
}
