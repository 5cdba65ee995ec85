// File: xoadvisor/handlers/bundle.go
package handlers

import "xoadvisor/middleware"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions       middleware.SessionResolver
	RequestsPerMin int

	Auth      *AuthHandler
	Directory *DirectoryHandler
	Inquiry   *InquiryHandler
	Profile   *ProfileHandler
	Admin     *AdminHandler
}
