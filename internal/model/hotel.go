package model

import "time"

// Hotel represents a row in the `hotels` table. Hotels are
// read-only reference data for the reservation flow; they are
// created by the seed tool or future admin tooling.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – hotel display name.
//  Address     – street address.
//  City        – city name.
//  Country     – ISO country code (e.g. PL).
//  Description – optional free-form description.
//  CreatedAt   – timestamp of creation.
type Hotel struct {
	ID          uint64    // hotels.id
	Name        string    // hotels.name
	Address     string    // hotels.address
	City        string    // hotels.city
	Country     string    // hotels.country
	Description *string   // hotels.description (nullable)
	CreatedAt   time.Time // hotels.created_at
}
