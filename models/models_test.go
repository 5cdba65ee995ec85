package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedSet_ToggleTwiceRestores(t *testing.T) {
	s := NewNeedSet([]string{"housing", "employment", "housing"})
	assert.Equal(t, []string{"housing", "employment"}, s.IDs())

	s.Toggle("food_clothing")
	assert.Equal(t, []string{"housing", "employment", "food_clothing"}, s.IDs())
	s.Toggle("food_clothing")
	assert.Equal(t, []string{"housing", "employment"}, s.IDs())

	s.Toggle("housing")
	assert.False(t, s.Has("housing"))
	s.Toggle("housing")
	assert.Equal(t, []string{"employment", "housing"}, s.IDs())
}

func TestNeedSet_IDsNeverNil(t *testing.T) {
	var s NeedSet
	assert.NotNil(t, s.IDs())
	assert.Zero(t, s.Len())
}

func TestProfile_Redacted(t *testing.T) {
	p := Profile{ID: "u1", SSN: "123-45-6789", StateID: "D1234567", Needs: []string{"housing"}}
	r := p.Redacted()

	assert.Equal(t, "***-**-6789", r.SSN)
	assert.Equal(t, "****", r.StateID)
	r.Needs[0] = "changed"
	assert.Equal(t, "housing", p.Needs[0])

	empty := Profile{ID: "u2"}.Redacted()
	assert.Empty(t, empty.SSN)
	assert.Empty(t, empty.StateID)
}

func TestCategory(t *testing.T) {
	assert.True(t, CategoryAssistance.Valid())
	assert.False(t, CategoryAll.Valid())
	assert.False(t, Category("legal").Valid())

	tabs := CategoryTabs()
	require.Len(t, tabs, 5)
	assert.Equal(t, CategoryAll, tabs[0].Value)
	assert.Equal(t, "Government Assistance", tabs[4].Label)
}

func TestRole_JSON(t *testing.T) {
	for _, r := range []Role{RoleGuest, RoleUser, RoleAdmin} {
		data, err := json.Marshal(Navigation{Role: r})
		require.NoError(t, err)
		var back Navigation
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, r, back.Role)
	}
}

func TestSession(t *testing.T) {
	assert.Nil(t, Session{}.UserIDOrNil())
	assert.False(t, Session{}.SignedIn())

	s := Session{UserID: "u1", Role: RoleUser}
	require.NotNil(t, s.UserIDOrNil())
	assert.Equal(t, "u1", *s.UserIDOrNil())
	assert.True(t, s.SignedIn())
}

func TestProfileUpdate_Empty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.Empty())
	blank := ""
	assert.False(t, ProfileUpdate{Address: &blank}.Empty())
}
