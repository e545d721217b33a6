package entity

import (
	"time"

	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/google/uuid"
)

type EstruturaStatus int

const (
	EstruturaActive   EstruturaStatus = 1
	EstruturaInactive EstruturaStatus = 2
)

func (s EstruturaStatus) IsDefined() bool {
	return s == EstruturaActive || s == EstruturaInactive
}

func (s EstruturaStatus) String() string {
	switch s {
	case EstruturaActive:
		return "active"
	case EstruturaInactive:
		return "inactive"
	default:
		return "undefined"
	}
}

// EstruturaData is the mutable part of an Estrutura, shared by create and update.
type EstruturaData struct {
	Name         string
	Description  *string
	TypeCode     int64
	ExternalCode string
	ValidFrom    time.Time
	ValidUntil   time.Time
	Status       EstruturaStatus
}

func (d EstruturaData) validate() error {
	var v violations
	v.requireName("name", d.Name)
	if d.Description != nil && len(*d.Description) > MaxDescriptionLength {
		v.add("description", "must be at most 500 characters")
	}
	if d.TypeCode == 0 {
		v.add("type_code", "is required")
	}
	if !d.ValidUntil.After(d.ValidFrom) {
		v.add("valid_until", "must be after valid_from")
	}
	if !d.Status.IsDefined() {
		v.add("status", "is not a defined status")
	}
	return v.err()
}

type Estrutura struct {
	Root
	data      EstruturaData
	version   int
	deleted   bool
	createdAt time.Time
	updatedAt *time.Time
}

type EstruturaState struct {
	ID uuid.UUID
	EstruturaData
	Version   int
	CreatedAt time.Time
	UpdatedAt *time.Time
	Revision  int
}

func NewEstrutura(d EstruturaData) (*Estrutura, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	e := &Estrutura{
		Root:      newRoot(uuid.New(), 0),
		data:      d,
		version:   1,
		createdAt: time.Now().UTC(),
	}
	e.Record(EstruturaCreated{
		Header:      events.NewHeader(EventEstruturaCreated, e.ID().String(), e.createdAt),
		EstruturaID: e.ID().String(),
		Name:        d.Name,
		TypeCode:    d.TypeCode,
		Status:      d.Status,
	})
	return e, nil
}

func RestoreEstrutura(s EstruturaState) *Estrutura {
	return &Estrutura{
		Root:      newRoot(s.ID, s.Revision),
		data:      s.EstruturaData,
		version:   s.Version,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

// Update replaces every mutable field and bumps the business version.
func (e *Estrutura) Update(d EstruturaData) error {
	if e.deleted {
		return notFoundDeleted(e.ID())
	}
	if err := d.validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	e.data = d
	e.version++
	e.updatedAt = &now
	e.Record(EstruturaUpdated{
		Header:      events.NewHeader(EventEstruturaUpdated, e.ID().String(), now),
		EstruturaID: e.ID().String(),
		Name:        d.Name,
		Version:     e.version,
		Status:      d.Status,
	})
	return nil
}

// MarkDeleted records the deletion; the repository removes the row when the change is saved.
func (e *Estrutura) MarkDeleted() error {
	if e.deleted {
		return notFoundDeleted(e.ID())
	}
	e.deleted = true
	e.Record(EstruturaDeleted{
		Header:      events.NewHeader(EventEstruturaDeleted, e.ID().String(), time.Now().UTC()),
		EstruturaID: e.ID().String(),
	})
	return nil
}

func (e *Estrutura) Name() string            { return e.data.Name }
func (e *Estrutura) Description() *string    { return e.data.Description }
func (e *Estrutura) TypeCode() int64         { return e.data.TypeCode }
func (e *Estrutura) ExternalCode() string    { return e.data.ExternalCode }
func (e *Estrutura) ValidFrom() time.Time    { return e.data.ValidFrom }
func (e *Estrutura) ValidUntil() time.Time   { return e.data.ValidUntil }
func (e *Estrutura) Status() EstruturaStatus { return e.data.Status }
func (e *Estrutura) Version() int            { return e.version }
func (e *Estrutura) IsDeleted() bool         { return e.deleted }
func (e *Estrutura) CreatedAt() time.Time    { return e.createdAt }
func (e *Estrutura) UpdatedAt() *time.Time   { return e.updatedAt }

func (e *Estrutura) State() EstruturaState {
	return EstruturaState{
		ID:            e.ID(),
		EstruturaData: e.data,
		Version:       e.version,
		CreatedAt:     e.createdAt,
		UpdatedAt:     e.updatedAt,
		Revision:      e.Revision(),
	}
}
