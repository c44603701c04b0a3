package model

import "time"

// RoomType represents a row in the `room_types` table. A room type
// defines the nightly base price and capacity shared by all rooms
// of that type within a hotel. Prices are stored as integer cents
// to avoid floating-point money.
//
// Fields:
//  ID             – primary key identifier.
//  HotelID        – hotel this type belongs to.
//  Name           – type name, unique per hotel (e.g. Single, Suite).
//  Capacity       – maximum number of guests.
//  BasePriceCents – nightly rate in currency minor units.
//  Description    – optional free-form description.
type RoomType struct {
	ID             uint64  // room_types.id
	HotelID        uint64  // room_types.hotel_id
	Name           string  // room_types.name
	Capacity       uint32  // room_types.capacity
	BasePriceCents int64   // room_types.base_price_cents
	Description    *string // room_types.description (nullable)
}

// Room represents a physical room in the `rooms` table. Rooms are
// immutable reference data from the reservation core's point of
// view; inactive rooms cannot be booked.
//
// Fields:
//  ID         – primary key identifier.
//  HotelID    – hotel the room belongs to.
//  RoomTypeID – room type defining price and capacity.
//  Number     – room number, unique per hotel.
//  Floor      – floor the room is on.
//  IsActive   – whether the room can be booked.
//  CreatedAt  – timestamp of creation.
type Room struct {
	ID         uint64    // rooms.id
	HotelID    uint64    // rooms.hotel_id
	RoomTypeID uint64    // rooms.room_type_id
	Number     string    // rooms.number
	Floor      int32     // rooms.floor
	IsActive   bool      // rooms.is_active
	CreatedAt  time.Time // rooms.created_at
}
