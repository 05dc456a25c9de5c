package handler

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/marina-berth-reservation/internal/queue"
	"github.com/iliyamo/marina-berth-reservation/internal/repository"
	publisher "github.com/iliyamo/marina-berth-reservation/internal/service"
)

// ReservationHandler exposes CRUD endpoints over bookings.  Writes go
// through schema validation first and the overlap invariant is enforced
// inside the repository transaction, so a handler never observes a
// half-checked booking.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
}

func NewReservationHandler(r *repository.ReservationRepo) *ReservationHandler {
	if r == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: r}
}

// List handles GET /reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.Reservations.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not list reservations"})
	}
	return c.JSON(http.StatusOK, reservations)
}

// Get handles GET /reservations/:catwayNumber.
func (h *ReservationHandler) Get(c echo.Context) error {
	number, err := catwayNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid catway number"})
	}
	res, err := h.Reservations.GetByCatwayNumber(c.Request().Context(), number)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not load reservation"})
	}
	return c.JSON(http.StatusOK, res)
}

// Create handles POST /reservations.  The payload is validated before the
// conflict check runs; a date-range collision on the catway is a 400.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	res, details := validateReservation(req)
	if details != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "details": details})
	}

	if err := h.Reservations.Create(c.Request().Context(), &res); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "reservation conflict: the catway is already booked for this period"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create reservation"})
	}

	// Notify downstream consumers.  The booking is already committed, so
	// a broker failure is logged and ignored.
	go func(res repository.Reservation) {
		ev := queue.ReservationBookedEvent{
			ReservationID: res.ID,
			CatwayNumber:  res.CatwayNumber,
			ClientName:    res.ClientName,
			BoatName:      res.BoatName,
			CheckIn:       res.CheckIn.Format("2006-01-02"),
			CheckOut:      res.CheckOut.Format("2006-01-02"),
			BookedAt:      time.Now().UTC().Format(time.RFC3339),
		}
		if err := publisher.PublishReservationBooked(context.Background(), ev); err != nil {
			log.Printf("reservation event publish failed: %v", err)
		}
	}(res)

	return c.JSON(http.StatusCreated, res)
}

// Update handles PUT /reservations/:catwayNumber.  The record being
// replaced is excluded from the conflict scan by its primary key inside
// the repository transaction.
func (h *ReservationHandler) Update(c echo.Context) error {
	number, err := catwayNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid catway number"})
	}
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	res, details := validateReservation(req)
	if details != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "details": details})
	}

	if err := h.Reservations.UpdateByCatwayNumber(c.Request().Context(), number, &res); err != nil {
		switch err {
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "reservation conflict: the catway is already booked for this period"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not update reservation"})
		}
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /reservations/:catwayNumber.
func (h *ReservationHandler) Delete(c echo.Context) error {
	number, err := catwayNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid catway number"})
	}
	if err := h.Reservations.DeleteByCatwayNumber(c.Request().Context(), number); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not delete reservation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted"})
}
