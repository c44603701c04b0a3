package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/karolw/hotel-reservation/internal/model"
)

// HotelRepo provides read access to the hotel catalog. Hotels are
// reference data; this service never mutates them outside the seed
// tool.
type HotelRepo struct{ db *sql.DB }

// NewHotelRepo returns a HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// List returns all hotels ordered by name then address for stable
// presentation.
func (r *HotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	const q = `SELECT id, name, address, city, country, description, created_at
	           FROM hotels
	           ORDER BY name, address`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]model.Hotel, 0)
	for rows.Next() {
		var h model.Hotel
		var desc sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &desc, &h.CreatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			h.Description = &d
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// GetByID fetches one hotel, returning ErrHotelNotFound when no row
// exists.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (model.Hotel, error) {
	const q = `SELECT id, name, address, city, country, description, created_at
	           FROM hotels WHERE id = ?`
	var h model.Hotel
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &desc, &h.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Hotel{}, ErrHotelNotFound
	}
	if err != nil {
		return model.Hotel{}, err
	}
	if desc.Valid {
		d := desc.String
		h.Description = &d
	}
	return h, nil
}
