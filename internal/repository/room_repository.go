package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/model"
)

// RoomRepo provides read access to rooms and their room types.
type RoomRepo struct{ db *sql.DB }

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// RoomDetail is the room shape returned to clients when browsing a
// hotel: the physical room plus its type and nightly price.
type RoomDetail struct {
	ID        uint64 `json:"id"`
	Number    string `json:"number"`
	Floor     int32  `json:"floor"`
	RoomType  string `json:"room_type"`
	Capacity  uint32 `json:"capacity"`
	BasePrice string `json:"base_price"`
	Currency  string `json:"currency"`
}

// newRoomDetail flattens a room and its type into the client shape,
// rendering the nightly price as a decimal string.
func newRoomDetail(room model.Room, rt model.RoomType) RoomDetail {
	return RoomDetail{
		ID:        room.ID,
		Number:    room.Number,
		Floor:     room.Floor,
		RoomType:  rt.Name,
		Capacity:  rt.Capacity,
		BasePrice: booking.FormatCents(rt.BasePriceCents),
		Currency:  booking.Currency,
	}
}

// ListByHotel returns all active rooms of a hotel ordered by floor
// then room number.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]RoomDetail, error) {
	const q = `SELECT r.id, r.hotel_id, r.room_type_id, r.number, r.floor,
	                  rt.id, rt.name, rt.capacity, rt.base_price_cents
	           FROM rooms r
	           JOIN room_types rt ON rt.id = r.room_type_id
	           WHERE r.hotel_id = ? AND r.is_active = 1
	           ORDER BY r.floor, r.number`
	return r.queryRooms(ctx, q, hotelID)
}

// AvailableRooms returns the active rooms of a hotel with no
// PENDING or CONFIRMED reservation overlapping [from, to). The
// result is ordered by floor then room number so repeated queries
// with no intervening writes return the same set in the same
// order.
func (r *RoomRepo) AvailableRooms(ctx context.Context, hotelID uint64, from, to time.Time) ([]RoomDetail, error) {
	const q = `SELECT r.id, r.hotel_id, r.room_type_id, r.number, r.floor,
	                  rt.id, rt.name, rt.capacity, rt.base_price_cents
	           FROM rooms r
	           JOIN room_types rt ON rt.id = r.room_type_id
	           WHERE r.hotel_id = ? AND r.is_active = 1
	             AND NOT EXISTS (
	               SELECT 1 FROM reservations res
	               WHERE res.room_id = r.id
	                 AND res.status IN ('PENDING','CONFIRMED')
	                 AND res.start_date < ? AND res.end_date > ?
	             )
	           ORDER BY r.floor, r.number`
	return r.queryRooms(ctx, q, hotelID, to, from)
}

func (r *RoomRepo) queryRooms(ctx context.Context, q string, args ...any) ([]RoomDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoomDetail, 0)
	for rows.Next() {
		var room model.Room
		var rt model.RoomType
		if err := rows.Scan(&room.ID, &room.HotelID, &room.RoomTypeID, &room.Number, &room.Floor,
			&rt.ID, &rt.Name, &rt.Capacity, &rt.BasePriceCents); err != nil {
			return nil, err
		}
		out = append(out, newRoomDetail(room, rt))
	}
	return out, rows.Err()
}
