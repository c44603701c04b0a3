package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/model"
	"github.com/karolw/hotel-reservation/internal/queue"
	"github.com/karolw/hotel-reservation/internal/repository"
	queue_publisher "github.com/karolw/hotel-reservation/internal/service"
)

// ReservationCreator is the slice of the booking coordinator the
// handler needs. Narrowing it to an interface keeps the handler
// testable without a database.
type ReservationCreator interface {
	CreateReservation(ctx context.Context, userID, roomID uint64, start, end time.Time) (*model.Reservation, error)
}

// ReservationHandler serves the authenticated reservation
// endpoints. JWT validation has already happened in middleware;
// methods return 401 only when the user ID cannot be extracted
// from the context.
type ReservationHandler struct {
	Coordinator  ReservationCreator
	Reservations *repository.ReservationRepo

	// Publish sends the post-commit event. Swappable for tests;
	// failures are logged by the publisher and otherwise ignored.
	Publish func(context.Context, queue.ReservationCreatedEvent) error
}

func NewReservationHandler(coord ReservationCreator, reservations *repository.ReservationRepo) *ReservationHandler {
	if coord == nil {
		panic("nil coordinator passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Coordinator:  coord,
		Reservations: reservations,
		Publish:      queue_publisher.PublishReservationCreated,
	}
}

type createReservationReq struct {
	RoomID    uint64 `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type reservationPart struct {
	ID          uint64 `json:"id"`
	RoomID      uint64 `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"currency"`
	CreatedAt   string `json:"created_at"`
}

// Create handles POST /v1/reservations. Input validation happens
// entirely before the coordinator is invoked, so malformed requests
// never touch the store. Business outcomes map one-to-one onto
// status codes: 404 unknown/inactive room, 409 conflicting booking,
// 503 after the transient-retry budget is exhausted.
func (h *ReservationHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.RoomID == 0 || req.StartDate == "" || req.EndDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id, start_date, end_date are required"})
	}
	start, err := booking.ParseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date/end_date must be YYYY-MM-DD"})
	}
	end, err := booking.ParseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date/end_date must be YYYY-MM-DD"})
	}

	res, err := h.Coordinator.CreateReservation(c.Request().Context(), userID, req.RoomID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInterval):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be after start_date"})
		case errors.Is(err, booking.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, booking.ErrDatesUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room is not available for these dates"})
		case errors.Is(err, booking.ErrBadPricing):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invalid room pricing configuration"})
		case errors.Is(err, booking.ErrTemporarilyUnavailable):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "temporarily unavailable, try again"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
		}
	}

	if h.Publish != nil {
		ev := queue.ReservationCreatedEvent{
			EventID:          uuid.NewString(),
			ReservationID:    res.ID,
			UserID:           res.UserID,
			RoomID:           res.RoomID,
			StartDate:        booking.FormatDate(res.StartDate),
			EndDate:          booking.FormatDate(res.EndDate),
			Status:           res.Status,
			TotalAmountCents: res.TotalAmountCents,
			Currency:         res.Currency,
			CreatedAt:        res.CreatedAt.UTC().Format(time.RFC3339),
		}
		// The booking is committed; event delivery is best effort.
		go func() { _ = h.Publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, echo.Map{"reservation": reservationPart{
		ID:          res.ID,
		RoomID:      res.RoomID,
		StartDate:   booking.FormatDate(res.StartDate),
		EndDate:     booking.FormatDate(res.EndDate),
		Status:      res.Status,
		TotalAmount: booking.FormatCents(res.TotalAmountCents),
		Currency:    res.Currency,
		CreatedAt:   res.CreatedAt.UTC().Format(time.RFC3339),
	}})
}

// List handles GET /v1/my-reservations and returns all reservations
// of the current user, newest first.
func (h *ReservationHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Reservations.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/reservations/:id for the owning user.
func (h *ReservationHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || resID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	detail, err := h.Reservations.GetByIDForUser(c.Request().Context(), resID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": detail})
}

// Cancel handles DELETE /v1/reservations/:id. Cancellation is a
// status change to CANCELLED; the row is kept and the room's dates
// become bookable again.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || resID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	err = h.Reservations.CancelForUser(c.Request().Context(), resID, userID)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, sql.ErrNoRows):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrAlreadyCancelled):
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation already cancelled"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel reservation"})
	}
}
