// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package facility serves the nearby-services directory: hospitals and
// pharmacies with distance, rating, hours, and offered services.
package facility

// Facility categories.
const (
	CategoryHospital = "hospital"
	CategoryPharmacy = "pharmacy"
)

// Categories is the accepted set for the category filter.
var Categories = []string{CategoryHospital, CategoryPharmacy}

// Facility is one nearby healthcare location.
type Facility struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	DistanceMiles float64  `json:"distance_miles"`
	Rating        float64  `json:"rating"`
	Hours         string   `json:"hours"`
	Services      []string `json:"services"`
}

// Filter narrows the directory listing. Zero values mean "no restriction".
type Filter struct {
	// Category restricts to one facility category.
	Category string
	// Query matches name, address, or any offered service, ignoring case.
	Query string
}
