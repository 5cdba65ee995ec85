// File: xoadvisor/models/inquiry.go
package models

import "time"

// InquiryStatus is the admin-managed lifecycle label of an inquiry.
// Any value may follow any other.
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
)

// InquiryStatuses lists every status an admin may set.
var InquiryStatuses = []InquiryStatus{
	InquiryStatusNew,
	InquiryStatusInProgress,
	InquiryStatusResolved,
}

func (s InquiryStatus) Valid() bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Inquiry is a contact message submitted through the public contact form.
type Inquiry struct {
	ID        string        `bson:"id" json:"id"`
	UserID    *string       `bson:"user_id" json:"user_id"`
	FullName  string        `bson:"full_name" json:"full_name"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone" json:"phone"`
	Message   string        `bson:"message" json:"message"`
	Status    InquiryStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// InquiryRequest is the contact form payload.
type InquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// StatusRequest is the admin status change payload.
type StatusRequest struct {
	Status InquiryStatus `json:"status" binding:"required"`
}
