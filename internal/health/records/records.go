// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package records holds the medical history surfaces: visit history, vaccine
// records, and allergies. Each list supports a case-insensitive keyword
// filter across its searchable fields.
package records

import "time"

// Visit is one entry in the medical visit history.
type Visit struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	Type     string    `json:"type"` // Check-up, Specialist, Laboratory, Imaging, Emergency
	Provider string    `json:"provider"`
	Notes    string    `json:"notes"`
	AddedAt  time.Time `json:"-"`
}

// Vaccine is one administered vaccine record.
type Vaccine struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	Manufacturer string `json:"manufacturer"`
	Dose         string `json:"dose"`
	Provider     string `json:"provider"`
	LotNumber    string `json:"lot_number"`
	NextDose     string `json:"next_dose"`
}

// RecommendedVaccine is a profile-based suggestion, not an administered dose.
type RecommendedVaccine struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Allergy is one recorded allergy or sensitivity.
type Allergy struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Severity  string `json:"severity"` // Severe, Moderate, Mild
	Reaction  string `json:"reaction"`
	Diagnosed string `json:"diagnosed"`
	Notes     string `json:"notes"`
}
