package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEstrutura() EstruturaData {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return EstruturaData{
		Name:         "Matriz",
		TypeCode:     10,
		ExternalCode: "EXT-1",
		ValidFrom:    from,
		ValidUntil:   from.AddDate(1, 0, 0),
		Status:       EstruturaActive,
	}
}

func TestNewEstrutura(t *testing.T) {
	e, err := NewEstrutura(validEstrutura())

	require.NoError(t, err)
	assert.Equal(t, 1, e.Version())
	assert.Equal(t, EstruturaActive, e.Status())
	require.Len(t, e.PendingEvents(), 1)
	assert.Equal(t, EventEstruturaCreated, e.PendingEvents()[0].EventName())
}

func TestNewEstrutura_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(d *EstruturaData)
		field  string
	}{
		{"Should require name", func(d *EstruturaData) { d.Name = "" }, "name"},
		{"Should limit description", func(d *EstruturaData) { d.Description = strPtr(strings.Repeat("d", 501)) }, "description"},
		{"Should require type code", func(d *EstruturaData) { d.TypeCode = 0 }, "type_code"},
		{"Should require an ordered validity window", func(d *EstruturaData) { d.ValidUntil = d.ValidFrom }, "valid_until"},
		{"Should require a defined status", func(d *EstruturaData) { d.Status = 7 }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validEstrutura()
			tt.modify(&d)

			e, err := NewEstrutura(d)

			assert.Nil(t, e)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			vs := apperr.ViolationsOf(err)
			require.Len(t, vs, 1)
			assert.Equal(t, tt.field, vs[0].Field)
		})
	}
}

func TestEstrutura_UpdateBumpsVersion(t *testing.T) {
	e, err := NewEstrutura(validEstrutura())
	require.NoError(t, err)
	e.PullEvents()
	d := validEstrutura()
	d.Status = EstruturaInactive

	require.NoError(t, e.Update(d))

	assert.Equal(t, 2, e.Version())
	assert.Equal(t, EstruturaInactive, e.Status())
	updated := e.PullEvents()[0].(EstruturaUpdated)
	assert.Equal(t, 2, updated.Version)
}

func TestEstrutura_MarkDeleted(t *testing.T) {
	e, err := NewEstrutura(validEstrutura())
	require.NoError(t, err)
	e.PullEvents()

	require.NoError(t, e.MarkDeleted())

	assert.True(t, e.IsDeleted())
	assert.ErrorIs(t, e.MarkDeleted(), apperr.ErrNotFound)
	assert.ErrorIs(t, e.Update(validEstrutura()), apperr.ErrNotFound)
	require.Len(t, e.PendingEvents(), 1)
	assert.Equal(t, EventEstruturaDeleted, e.PendingEvents()[0].EventName())
}
