package entity

import (
	"strings"
	"time"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/google/uuid"
)

const MaxPhoneLength = 20

type Customer struct {
	Root
	name        string
	email       Email
	phoneNumber *string
	isActive    bool
	createdAt   time.Time
	updatedAt   *time.Time
}

type CustomerState struct {
	ID          uuid.UUID
	Name        string
	Email       string
	PhoneNumber *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Revision    int
}

func validateCustomer(name, email string, phone *string) (Email, error) {
	var v violations
	v.requireName("name", name)
	mail, mailErr := NewEmail(email)
	if mailErr != nil {
		v.add("email", messageOf(mailErr))
	}
	if phone != nil && len(strings.TrimSpace(*phone)) > MaxPhoneLength {
		v.add("phone_number", "must be at most 20 characters")
	}
	return mail, v.err()
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	p := strings.TrimSpace(*phone)
	if p == "" {
		return nil
	}
	return &p
}

func NewCustomer(name, email string, phone *string) (*Customer, error) {
	mail, err := validateCustomer(name, email, phone)
	if err != nil {
		return nil, err
	}

	c := &Customer{
		Root:        newRoot(uuid.New(), 0),
		name:        name,
		email:       mail,
		phoneNumber: normalizePhone(phone),
		isActive:    true,
		createdAt:   time.Now().UTC(),
	}
	c.Record(CustomerCreated{
		Header:     events.NewHeader(EventCustomerCreated, c.ID().String(), c.createdAt),
		CustomerID: c.ID().String(),
		Name:       c.name,
		Email:      c.email.String(),
	})
	return c, nil
}

func RestoreCustomer(s CustomerState) *Customer {
	return &Customer{
		Root:        newRoot(s.ID, s.Revision),
		name:        s.Name,
		email:       Email{value: s.Email},
		phoneNumber: s.PhoneNumber,
		isActive:    s.IsActive,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

func (c *Customer) Update(name, email string, phone *string) error {
	if !c.isActive {
		return notActive("customer")
	}
	mail, err := validateCustomer(name, email, phone)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	c.name = name
	c.email = mail
	c.phoneNumber = normalizePhone(phone)
	c.updatedAt = &now
	c.Record(CustomerUpdated{
		Header:      events.NewHeader(EventCustomerUpdated, c.ID().String(), now),
		CustomerID:  c.ID().String(),
		Name:        c.name,
		Email:       c.email.String(),
		PhoneNumber: c.phoneNumber,
	})
	return nil
}

// Deactivate blocks further updates until the customer is activated again.
func (c *Customer) Deactivate() error {
	if !c.isActive {
		return notActive("customer")
	}
	now := time.Now().UTC()
	c.isActive = false
	c.updatedAt = &now
	c.Record(CustomerDeactivated{
		Header:     events.NewHeader(EventCustomerDeactivated, c.ID().String(), now),
		CustomerID: c.ID().String(),
	})
	return nil
}

func (c *Customer) Activate() error {
	if c.isActive {
		return apperr.Conflict("customer", "customer is already active")
	}
	now := time.Now().UTC()
	c.isActive = true
	c.updatedAt = &now
	c.Record(CustomerActivated{
		Header:     events.NewHeader(EventCustomerActivated, c.ID().String(), now),
		CustomerID: c.ID().String(),
	})
	return nil
}

func (c *Customer) Name() string          { return c.name }
func (c *Customer) Email() Email          { return c.email }
func (c *Customer) PhoneNumber() *string  { return c.phoneNumber }
func (c *Customer) IsActive() bool        { return c.isActive }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
func (c *Customer) UpdatedAt() *time.Time { return c.updatedAt }

func (c *Customer) State() CustomerState {
	return CustomerState{
		ID:          c.ID(),
		Name:        c.name,
		Email:       c.email.String(),
		PhoneNumber: c.phoneNumber,
		IsActive:    c.isActive,
		CreatedAt:   c.createdAt,
		UpdatedAt:   c.updatedAt,
		Revision:    c.Revision(),
	}
}
