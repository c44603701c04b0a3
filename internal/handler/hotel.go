package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/repository"
)

// HotelHandler serves the public catalog endpoints: hotel listing,
// room listing and the availability search. All of them are
// read-only and safe to cache.
type HotelHandler struct {
	Hotels *repository.HotelRepo
	Rooms  *repository.RoomRepo
}

func NewHotelHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo) *HotelHandler {
	if hotels == nil || rooms == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels, Rooms: rooms}
}

type hotelPart struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description,omitempty"`
}

// ListHotels handles GET /v1/hotels. Hotels are returned ordered by
// name then address.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Hotels.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load hotels"})
	}
	items := make([]hotelPart, 0, len(hotels))
	for _, ht := range hotels {
		p := hotelPart{ID: ht.ID, Name: ht.Name, Address: ht.Address, City: ht.City, Country: ht.Country}
		if ht.Description != nil {
			p.Description = *ht.Description
		}
		items = append(items, p)
	}
	return c.JSON(http.StatusOK, echo.Map{"hotels": items})
}

// ListRooms handles GET /v1/hotels/:id/rooms and returns the active
// rooms of one hotel with their types and nightly prices.
func (h *HotelHandler) ListRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.Rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"hotel_id": hotelID, "rooms": rooms})
}

// AvailableRooms handles GET /v1/rooms/available?hotel_id&from&to.
// Dates are YYYY-MM-DD and interpreted as a half-open interval
// [from, to); malformed input is rejected before any store access.
func (h *HotelHandler) AvailableRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.QueryParam("hotel_id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hotel_id is required"})
	}
	fromStr, toStr := c.QueryParam("from"), c.QueryParam("to")
	if fromStr == "" || toStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to are required"})
	}
	from, err := booking.ParseDate(fromStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from/to must be YYYY-MM-DD"})
	}
	to, err := booking.ParseDate(toStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from/to must be YYYY-MM-DD"})
	}
	if !to.After(from) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be after from"})
	}

	rooms, err := h.Rooms.AvailableRooms(c.Request().Context(), hotelID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load availability"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"hotel_id": hotelID,
		"from":     fromStr,
		"to":       toStr,
		"rooms":    rooms,
	})
}
