package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfileFullName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		profile UserProfile
		want    string
	}{
		{name: "both names", profile: UserProfile{FirstName: "Ada", LastName: "Lovelace"}, want: "Ada Lovelace"},
		{name: "first only", profile: UserProfile{FirstName: "Ada"}, want: "Ada"},
		{name: "last only", profile: UserProfile{LastName: "Lovelace"}, want: "Lovelace"},
		{name: "empty", profile: UserProfile{}, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.profile.FullName())
		})
	}
}

func TestUserProfileIsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, UserProfile{Role: RoleAdmin}.IsAdmin())
	assert.False(t, UserProfile{Role: RoleUser}.IsAdmin())
	assert.False(t, UserProfile{}.IsAdmin())
}

func TestSavingProgress(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		saving Saving
		want   float64
	}{
		{name: "halfway", saving: Saving{Amount: 200, CurrentAmount: 100}, want: 50},
		{name: "overfunded clamps", saving: Saving{Amount: 100, CurrentAmount: 150}, want: 100},
		{name: "zero target", saving: Saving{Amount: 0, CurrentAmount: 50}, want: 0},
		{name: "untouched", saving: Saving{Amount: 100}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.saving.Progress(), 0.0001)
		})
	}
}
