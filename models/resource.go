// File: xoadvisor/models/resource.go
package models

import "time"

// Category is the directory tab a resource is listed under.
type Category string

const (
	CategoryHousing        Category = "housing"
	CategoryEmployment     Category = "employment"
	CategoryTransportation Category = "transportation"
	CategoryAssistance     Category = "assistance"

	// CategoryAll is the directory tab that shows every active resource.
	CategoryAll Category = "all"
)

// Categories lists the storable categories in tab order.
var Categories = []Category{
	CategoryHousing,
	CategoryEmployment,
	CategoryTransportation,
	CategoryAssistance,
}

var categoryLabels = map[Category]string{
	CategoryAll:            "All Resources",
	CategoryHousing:        "Housing",
	CategoryEmployment:     "Employment",
	CategoryTransportation: "Transportation",
	CategoryAssistance:     "Government Assistance",
}

// Valid reports whether c is one of the storable categories ("all" is not).
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display label of the category tab.
func (c Category) Label() string {
	return categoryLabels[c]
}

// CategoryTab is one entry of the directory tab bar.
type CategoryTab struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// CategoryTabs returns the tab bar, "all" first.
func CategoryTabs() []CategoryTab {
	tabs := []CategoryTab{{Value: CategoryAll, Label: CategoryAll.Label()}}
	for _, c := range Categories {
		tabs = append(tabs, CategoryTab{Value: c, Label: c.Label()})
	}
	return tabs
}

// Resource is a directory entry describing a service-provider offering.
type Resource struct {
	ID           string    `bson:"id" json:"id"`
	Category     Category  `bson:"category" json:"category"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Organization string    `bson:"organization" json:"organization"`
	ContactPhone *string   `bson:"contact_phone,omitempty" json:"contact_phone"`
	ContactEmail *string   `bson:"contact_email,omitempty" json:"contact_email"`
	WebsiteURL   *string   `bson:"website_url,omitempty" json:"website_url"`
	Address      *string   `bson:"address,omitempty" json:"address"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ResourceDraft is the shared create/edit form of the admin console.
// A draft with an ID updates that resource; without one it inserts.
// Nil fields are absent and are left untouched on update. An optional
// contact field that is present but empty clears the stored value.
type ResourceDraft struct {
	ID           string    `json:"id,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Organization *string   `json:"organization,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	WebsiteURL   *string   `json:"website_url,omitempty"`
	Address      *string   `json:"address,omitempty"`
	IsActive     *bool     `json:"is_active,omitempty"`
}

// IsUpdate reports whether the draft targets an existing resource.
func (d ResourceDraft) IsUpdate() bool {
	return d.ID != ""
}
