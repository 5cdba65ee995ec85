package site

import "xoadvisor/models"

var publicLinks = []models.NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Resources", Href: "/resources"},
	{Label: "Contact", Href: "/#contact"},
}

// Navigation returns the site shell links shown to a caller with role.
func Navigation(role models.Role) models.Navigation {
	links := append([]models.NavLink{}, publicLinks...)
	switch role {
	case models.RoleAdmin:
		links = append(links,
			models.NavLink{Label: "Admin", Href: "/admin"},
			models.NavLink{Label: "Profile", Href: "/profile"},
		)
	case models.RoleUser:
		links = append(links,
			models.NavLink{Label: "Dashboard", Href: "/dashboard"},
			models.NavLink{Label: "Profile", Href: "/profile"},
		)
	default:
		links = append(links, models.NavLink{Label: "Sign In", Href: "/auth"})
	}
	return models.Navigation{Role: role, Links: links}
}
