// File: xoadvisor/models/profile.go
package models

import "time"

// Need is one entry of the fixed needs vocabulary a user can select.
type Need string

const (
	NeedHousing              Need = "housing"
	NeedEmployment           Need = "employment"
	NeedFoodClothing         Need = "food_clothing"
	NeedGovernmentAssistance Need = "government_assistance"
)

// NeedOptions lists the vocabulary in display order.
var NeedOptions = []Need{
	NeedHousing,
	NeedEmployment,
	NeedFoodClothing,
	NeedGovernmentAssistance,
}

func (n Need) Valid() bool {
	for _, known := range NeedOptions {
		if n == known {
			return true
		}
	}
	return false
}

// Profile is the per-identity personal record. ID equals the account ID.
type Profile struct {
	ID          string    `bson:"id" json:"id"`
	Email       string    `bson:"email" json:"email"`
	FullName    string    `bson:"full_name" json:"full_name"`
	Phone       string    `bson:"phone" json:"phone"`
	SSN         string    `bson:"ssn" json:"ssn"`
	StateID     string    `bson:"state_id" json:"state_id"`
	Address     string    `bson:"address" json:"address"`
	DateOfBirth string    `bson:"date_of_birth" json:"date_of_birth"`
	Needs       []string  `bson:"needs" json:"needs"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Redacted returns a copy with sensitive identifiers masked, for listings
// shown to anyone but the owner.
func (p Profile) Redacted() Profile {
	if p.SSN != "" {
		p.SSN = "***-**-" + lastN(p.SSN, 4)
	}
	if p.StateID != "" {
		p.StateID = "****"
	}
	p.Needs = append([]string(nil), p.Needs...)
	return p
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// ProfileUpdate is a partial profile form. Nil fields were not submitted and
// are never written; a non-nil empty string clears the field.
type ProfileUpdate struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	SSN         *string `json:"ssn"`
	StateID     *string `json:"state_id"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
}

// Empty reports whether no field was submitted.
func (u ProfileUpdate) Empty() bool {
	return u.FullName == nil && u.Phone == nil && u.SSN == nil &&
		u.StateID == nil && u.Address == nil && u.DateOfBirth == nil
}

// NeedsRequest carries the full needs selection to persist.
type NeedsRequest struct {
	Needs []string `json:"needs"`
}
