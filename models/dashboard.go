package models

// Dashboard is the signed-in user's landing page payload.
type Dashboard struct {
	Profile   *Profile  `json:"profile"`
	Inquiries []Inquiry `json:"inquiries"`
}

// AdminOverview feeds the three admin console tabs in one response.
type AdminOverview struct {
	Resources []Resource `json:"resources"`
	Inquiries []Inquiry  `json:"inquiries"`
	Profiles  []Profile  `json:"profiles"`
}
