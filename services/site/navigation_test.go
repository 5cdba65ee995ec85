package site

import (
	"testing"

	"xoadvisor/models"

	"github.com/stretchr/testify/assert"
)

func hrefs(nav models.Navigation) []string {
	out := make([]string, 0, len(nav.Links))
	for _, l := range nav.Links {
		out = append(out, l.Href)
	}
	return out
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		role models.Role
		want []string
	}{
		{models.RoleGuest, []string{"/", "/resources", "/#contact", "/auth"}},
		{models.RoleUser, []string{"/", "/resources", "/#contact", "/dashboard", "/profile"}},
		{models.RoleAdmin, []string{"/", "/resources", "/#contact", "/admin", "/profile"}},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			nav := Navigation(tt.role)
			assert.Equal(t, tt.want, hrefs(nav))
			assert.Equal(t, tt.role, nav.Role)
		})
	}
}

func TestNavigation_DoesNotShareBackingArray(t *testing.T) {
	a := Navigation(models.RoleUser)
	a.Links[0].Label = "changed"
	assert.Equal(t, "Home", Navigation(models.RoleGuest).Links[0].Label)
}
