package entity

import (
	"time"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/google/uuid"
)

type User struct {
	Root
	name      string
	email     Email
	isActive  bool
	createdAt time.Time
	updatedAt *time.Time
}

// UserState is the persisted shape of a User.
type UserState struct {
	ID        uuid.UUID
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	Revision  int
}

func NewUser(name, email string) (*User, error) {
	var v violations
	v.requireName("name", name)
	mail, mailErr := NewEmail(email)
	if mailErr != nil {
		v.add("email", messageOf(mailErr))
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	u := &User{
		Root:      newRoot(uuid.New(), 0),
		name:      name,
		email:     mail,
		isActive:  true,
		createdAt: time.Now().UTC(),
	}
	u.Record(UserCreated{
		Header: events.NewHeader(EventUserCreated, u.ID().String(), u.createdAt),
		UserID: u.ID().String(),
		Name:   u.name,
		Email:  u.email.String(),
	})
	return u, nil
}

// RestoreUser rebuilds a persisted user. It records no events.
func RestoreUser(s UserState) *User {
	return &User{
		Root:      newRoot(s.ID, s.Revision),
		name:      s.Name,
		email:     Email{value: s.Email},
		isActive:  s.IsActive,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

func (u *User) Update(name, email string) error {
	if !u.isActive {
		return notActive("user")
	}
	var v violations
	v.requireName("name", name)
	mail, mailErr := NewEmail(email)
	if mailErr != nil {
		v.add("email", messageOf(mailErr))
	}
	if err := v.err(); err != nil {
		return err
	}

	now := time.Now().UTC()
	u.name = name
	u.email = mail
	u.updatedAt = &now
	u.Record(UserUpdated{
		Header: events.NewHeader(EventUserUpdated, u.ID().String(), now),
		UserID: u.ID().String(),
		Name:   u.name,
		Email:  u.email.String(),
	})
	return nil
}

func (u *User) Deactivate() error {
	if !u.isActive {
		return notActive("user")
	}
	now := time.Now().UTC()
	u.isActive = false
	u.updatedAt = &now
	u.Record(UserDeactivated{
		Header: events.NewHeader(EventUserDeactivated, u.ID().String(), now),
		UserID: u.ID().String(),
	})
	return nil
}

func (u *User) Activate() error {
	if u.isActive {
		return apperr.Conflict("user", "user is already active")
	}
	now := time.Now().UTC()
	u.isActive = true
	u.updatedAt = &now
	u.Record(UserActivated{
		Header: events.NewHeader(EventUserActivated, u.ID().String(), now),
		UserID: u.ID().String(),
	})
	return nil
}

func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() *time.Time { return u.updatedAt }

func (u *User) State() UserState {
	return UserState{
		ID:        u.ID(),
		Name:      u.name,
		Email:     u.email.String(),
		IsActive:  u.isActive,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
		Revision:  u.Revision(),
	}
}
