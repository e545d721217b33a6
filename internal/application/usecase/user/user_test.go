package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/DioGolang/GoSlices/pkg/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T) *mediator.Dispatcher {
	t.Helper()
	slices := database.NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	reg := mediator.NewRegistry().Use(mediator.NewValidationBehavior(validation.New()))
	Register(reg, NewHandlers(slices.Users))
	d, err := reg.Build(Requests()...)
	require.NoError(t, err)
	return d
}

func create(t *testing.T, d *mediator.Dispatcher, name, email string) UserDTO {
	t.Helper()
	u, err := mediator.Send[UserDTO](context.Background(), d, CreateUser{Name: name, Email: email})
	require.NoError(t, err)
	return u
}

func TestCreateUser(t *testing.T) {
	//Arrange
	d := newDispatcher(t)

	//Act
	u := create(t, d, "Ada", "Ada@Example.com")

	//Assert
	assert.Equal(t, "ada@example.com", u.Email)
	assert.True(t, u.IsActive)
	got, err := mediator.Send[*UserDTO](context.Background(), d, GetUser{ID: u.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
}

func TestCreateUser_DuplicateEmailIsAConflict(t *testing.T) {
	d := newDispatcher(t)
	create(t, d, "Ada", "ada@example.com")

	_, err := mediator.Send[UserDTO](context.Background(), d, CreateUser{Name: "Other", Email: "ADA@example.com"})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	page, err := mediator.Send[pagination.Page[UserDTO]](context.Background(), d, ListUsers{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
}

func TestCreateUser_ReportsEveryViolation(t *testing.T) {
	d := newDispatcher(t)

	_, err := mediator.Send[UserDTO](context.Background(), d, CreateUser{Name: "", Email: "nope"})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Len(t, apperr.ViolationsOf(err), 2)
}

func TestUpdateUser(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	a := create(t, d, "Ada", "ada@example.com")
	create(t, d, "Bob", "bob@example.com")

	updated, err := mediator.Send[UserDTO](ctx, d, UpdateUser{ID: a.ID, Name: "Ada L", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ada L", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	_, err = mediator.Send[UserDTO](ctx, d, UpdateUser{ID: a.ID, Name: "Ada", Email: "bob@example.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = mediator.Send[UserDTO](ctx, d, UpdateUser{ID: uuid.NewString(), Name: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetUser_AbsentIsNil(t *testing.T) {
	d := newDispatcher(t)

	got, err := mediator.Send[*UserDTO](context.Background(), d, GetUser{ID: uuid.NewString()})
	require.NoError(t, err)
	assert.Nil(t, got)

	byEmail, err := mediator.Send[*UserDTO](context.Background(), d, GetUserByEmail{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Nil(t, byEmail)
}

func TestValidateUser(t *testing.T) {
	//Arrange
	d := newDispatcher(t)
	ctx := context.Background()
	active := create(t, d, "Ada", "ada@example.com")
	inactive := create(t, d, "Bob", "bob@example.com")
	_, err := mediator.Send[UserDTO](ctx, d, DeactivateUser{ID: inactive.ID})
	require.NoError(t, err)

	tests := []struct {
		name   string
		userID string
		want   ValidationResult
	}{
		{"active user", active.ID, ValidationResult{IsValid: true}},
		{"inactive user", inactive.ID, ValidationResult{Reason: ReasonInactive}},
		{"unknown user", uuid.NewString(), ValidationResult{Reason: ReasonNotFound}},
		{"malformed id", "not-a-uuid", ValidationResult{Reason: ReasonInvalidID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Act
			got, err := mediator.Send[ValidationResult](ctx, d, ValidateUser{UserID: tt.userID})

			//Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeactivateAndActivateUser(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	u := create(t, d, "Ada", "ada@example.com")

	out, err := mediator.Send[UserDTO](ctx, d, DeactivateUser{ID: u.ID})
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	_, err = mediator.Send[UserDTO](ctx, d, DeactivateUser{ID: u.ID})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	out, err = mediator.Send[UserDTO](ctx, d, ActivateUser{ID: u.ID})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestListUsers_PaginatesOverTheFilteredSet(t *testing.T) {
	//Arrange
	d := newDispatcher(t)
	ctx := context.Background()
	for i := range 25 {
		u := create(t, d, fmt.Sprintf("user %d", i), fmt.Sprintf("user%d@example.com", i))
		if i%5 == 0 {
			_, err := mediator.Send[UserDTO](ctx, d, DeactivateUser{ID: u.ID})
			require.NoError(t, err)
		}
	}

	//Act
	seen := map[string]bool{}
	var pages []pagination.Page[UserDTO]
	for n := 1; n <= 3; n++ {
		p, err := mediator.Send[pagination.Page[UserDTO]](ctx, d, ListUsers{PageNumber: n, PageSize: 10})
		require.NoError(t, err)
		pages = append(pages, p)
		for _, u := range p.Items {
			seen[u.ID] = true
		}
	}
	active, err := mediator.Send[pagination.Page[UserDTO]](ctx, d, ListUsers{ActiveOnly: true})
	require.NoError(t, err)

	//Assert
	assert.Len(t, pages[1].Items, 10)
	assert.Equal(t, 2, pages[1].PageNumber)
	assert.Len(t, pages[2].Items, 5)
	assert.Len(t, seen, 25)
	assert.Equal(t, 20, active.TotalCount)
	assert.Equal(t, pagination.DefaultPageSize, active.PageSize)
	assert.Len(t, active.Items, 10)
}
