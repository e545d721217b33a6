package entity

import (
	"strings"
	"testing"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	//Act
	u, err := NewUser("Ada", "Ada@Example.com")

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email().String())
	assert.True(t, u.IsActive())
	assert.Equal(t, 0, u.Revision())
	pending := u.PendingEvents()
	require.Len(t, pending, 1)
	assert.Equal(t, EventUserCreated, pending[0].EventName())
	assert.Equal(t, u.ID().String(), pending[0].AggregateID())
}

func TestNewUser_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		user   string
		email  string
		fields []string
	}{
		{"Should reject empty name", "", "a@b.com", []string{"name"}},
		{"Should reject long name", strings.Repeat("x", 201), "a@b.com", []string{"name"}},
		{"Should reject bad email", "Ada", "nope", []string{"email"}},
		{"Should report every violation", " ", "", []string{"name", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.user, tt.email)

			assert.Nil(t, u)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			var fields []string
			for _, v := range apperr.ViolationsOf(err) {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestUser_FailedUpdateLeavesStateAndEventsUnchanged(t *testing.T) {
	//Arrange
	u, err := NewUser("Ada", "ada@example.com")
	require.NoError(t, err)
	u.PullEvents()

	//Act
	err = u.Update("", "ada@example.com")

	//Assert
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "Ada", u.Name())
	assert.Nil(t, u.UpdatedAt())
	assert.Empty(t, u.PendingEvents())
}

func TestUser_DeactivateAndActivate(t *testing.T) {
	u, err := NewUser("Ada", "ada@example.com")
	require.NoError(t, err)
	u.PullEvents()

	require.NoError(t, u.Deactivate())
	assert.False(t, u.IsActive())
	assert.ErrorIs(t, u.Deactivate(), apperr.ErrConflict)
	assert.ErrorIs(t, u.Update("Ada L", "ada@example.com"), apperr.ErrConflict)

	require.NoError(t, u.Activate())
	assert.ErrorIs(t, u.Activate(), apperr.ErrConflict)

	var names []string
	for _, e := range u.PullEvents() {
		names = append(names, e.EventName())
	}
	assert.Equal(t, []string{EventUserDeactivated, EventUserActivated}, names)
}

func TestRestoreUser_RecordsNoEvents(t *testing.T) {
	u, err := NewUser("Ada", "ada@example.com")
	require.NoError(t, err)
	u.MarkPersisted(3)

	restored := RestoreUser(u.State())

	assert.Equal(t, u.State(), restored.State())
	assert.Empty(t, restored.PendingEvents())
}
