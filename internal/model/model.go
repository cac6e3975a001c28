// Package model holds the row shapes read from and written to the store.
package model

import "time"

// User is a row of the users relation. Password is an opaque hash.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}

// Property is a row of the properties relation. CostPerNight is in minor
// currency units (cents).
type Property struct {
	ID                int64  `db:"id" json:"id"`
	OwnerID           int64  `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64  `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces     int32  `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int32  `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country           string `db:"country" json:"country"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Active            bool   `db:"active" json:"active"`
}

// PropertySearchResult is one row of a property search.
//
// AverageRating is nil only when unreviewed properties are included in the
// search (LEFT JOIN); with the default inner join every row has a rating.
type PropertySearchResult struct {
	ID                int64    `db:"id" json:"id"`
	OwnerID           int64    `db:"owner_id" json:"owner_id"`
	Title             string   `db:"title" json:"title"`
	NumberOfBedrooms  int32    `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	NumberOfBathrooms int32    `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	ParkingSpaces     int32    `db:"parking_spaces" json:"parking_spaces"`
	CostPerNight      int64    `db:"cost_per_night" json:"cost_per_night"`
	ThumbnailPhotoURL string   `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string   `db:"cover_photo_url" json:"cover_photo_url"`
	Street            string   `db:"street" json:"street"`
	City              string   `db:"city" json:"city"`
	Province          string   `db:"province" json:"province"`
	PostCode          string   `db:"post_code" json:"post_code"`
	Country           string   `db:"country" json:"country"`
	AverageRating     *float64 `db:"average_rating" json:"average_rating"`
}

// ReservationWithPropertySummary is a guest's reservation joined with the
// reserved property and its average rating.
type ReservationWithPropertySummary struct {
	ID                int64     `db:"id" json:"id"`
	PropertyID        int64     `db:"property_id" json:"property_id"`
	Title             string    `db:"title" json:"title"`
	StartDate         time.Time `db:"start_date" json:"start_date"`
	EndDate           time.Time `db:"end_date" json:"end_date"`
	NumberOfBathrooms int32     `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int32     `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	ParkingSpaces     int32     `db:"parking_spaces" json:"parking_spaces"`
	CostPerNight      int64     `db:"cost_per_night" json:"cost_per_night"`
	ThumbnailPhotoURL string    `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	AverageRating     *float64  `db:"average_rating" json:"average_rating"`
}
