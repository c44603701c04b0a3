// Command seed populates the database with demo hotels, room types
// and rooms. It is idempotent: every insert is keyed on the natural
// unique constraint, so re-running it updates nothing and creates no
// duplicates.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/config"
	"github.com/karolw/hotel-reservation/internal/database"
)

type hotelSeed struct {
	name, address, city, country, description string
	rooms                                     []roomSeed
}

type roomSeed struct {
	roomType string
	number   string
	floor    int
}

var roomTypes = []struct {
	name      string
	capacity  int
	basePrice string // nightly price in PLN, e.g. "199.00"
}{
	{"Single", 1, "199.00"},
	{"Double", 2, "299.00"},
	{"Suite", 4, "599.00"},
}

var hotels = []hotelSeed{
	{
		name: "Hotel Aurora", address: "ul. Marszałkowska 12", city: "Warszawa", country: "Poland",
		description: "City-centre hotel next to the Palace of Culture.",
		rooms: []roomSeed{
			{"Single", "101", 1}, {"Single", "102", 1}, {"Double", "103", 1},
			{"Double", "201", 2}, {"Double", "202", 2}, {"Suite", "301", 3},
		},
	},
	{
		name: "Grand Baltic", address: "Długi Targ 5", city: "Gdańsk", country: "Poland",
		description: "Harbour-side hotel a short walk from the old town.",
		rooms: []roomSeed{
			{"Single", "11", 1}, {"Double", "12", 1}, {"Double", "21", 2}, {"Suite", "22", 2},
		},
	},
	{
		name: "Tatra Lodge", address: "Krupówki 40", city: "Zakopane", country: "Poland",
		description: "Mountain lodge at the foot of the Tatras.",
		rooms: []roomSeed{
			{"Double", "1", 0}, {"Double", "2", 0}, {"Suite", "3", 1},
		},
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seed complete")
}

func seed(ctx context.Context, db *sql.DB) error {
	for _, h := range hotels {
		hotelID, err := upsert(ctx, db,
			`INSERT INTO hotels (name, address, city, country, description) VALUES (?,?,?,?,?)
			 ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`,
			h.name, h.address, h.city, h.country, h.description)
		if err != nil {
			return fmt.Errorf("hotel %q: %w", h.name, err)
		}

		// Room types are scoped per hotel, keyed on (hotel_id, name).
		typeIDs := make(map[string]uint64, len(roomTypes))
		for _, rt := range roomTypes {
			cents, err := booking.ParseAmount(rt.basePrice)
			if err != nil {
				return fmt.Errorf("room type %q: bad price %q: %w", rt.name, rt.basePrice, err)
			}
			id, err := upsert(ctx, db,
				`INSERT INTO room_types (hotel_id, name, capacity, base_price_cents) VALUES (?,?,?,?)
				 ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`,
				hotelID, rt.name, rt.capacity, cents)
			if err != nil {
				return fmt.Errorf("hotel %q room type %q: %w", h.name, rt.name, err)
			}
			typeIDs[rt.name] = id
		}

		for _, r := range h.rooms {
			typeID, ok := typeIDs[r.roomType]
			if !ok {
				return fmt.Errorf("hotel %q room %s references unknown type %q", h.name, r.number, r.roomType)
			}
			if _, err := upsert(ctx, db,
				`INSERT INTO rooms (hotel_id, room_type_id, number, floor) VALUES (?,?,?,?)
				 ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`,
				hotelID, typeID, r.number, r.floor); err != nil {
				return fmt.Errorf("hotel %q room %s: %w", h.name, r.number, err)
			}
		}
		log.Printf("seeded %q with %d rooms", h.name, len(h.rooms))
	}
	return nil
}

// upsert runs an INSERT ... ON DUPLICATE KEY UPDATE id=LAST_INSERT_ID(id)
// statement and returns the row's id whether it was inserted or
// already present.
func upsert(ctx context.Context, db *sql.DB, query string, args ...any) (uint64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
