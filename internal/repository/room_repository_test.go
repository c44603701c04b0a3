package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karolw/hotel-reservation/internal/model"
)

func TestNewRoomDetail(t *testing.T) {
	room := model.Room{ID: 9, HotelID: 2, RoomTypeID: 5, Number: "301", Floor: 3, IsActive: true}
	rt := model.RoomType{ID: 5, HotelID: 2, Name: "Suite", Capacity: 4, BasePriceCents: 59900}

	d := newRoomDetail(room, rt)

	assert.Equal(t, uint64(9), d.ID)
	assert.Equal(t, "301", d.Number)
	assert.Equal(t, int32(3), d.Floor)
	assert.Equal(t, "Suite", d.RoomType)
	assert.Equal(t, uint32(4), d.Capacity)
	assert.Equal(t, "599.00", d.BasePrice)
	assert.Equal(t, "PLN", d.Currency)
}
