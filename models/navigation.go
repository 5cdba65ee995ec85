package models

// NavLink is one navigation entry rendered by the site shell.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Navigation is the role-dependent link set of the site shell.
type Navigation struct {
	Role  Role      `json:"role"`
	Links []NavLink `json:"links"`
}
