package entity

import (
	"strings"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/google/uuid"
)

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 500
)

// violations collects every failed rule of a mutator before any field changes.
type violations []apperr.Violation

func (v *violations) add(field, message string) {
	*v = append(*v, apperr.Violation{Field: field, Message: message})
}

func (v *violations) requireName(field, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		v.add(field, "cannot be empty")
	case len(value) > MaxNameLength:
		v.add(field, "must be at most 200 characters")
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return apperr.Validation(v...)
}

func notActive(entity string) error {
	return apperr.Conflict(entity, entity+" is not active")
}

// messageOf returns the message of a single-violation error from a value object factory.
func messageOf(err error) string {
	if vs := apperr.ViolationsOf(err); len(vs) > 0 {
		return vs[0].Message
	}
	return err.Error()
}

func notFoundDeleted(id uuid.UUID) error {
	return apperr.NotFound("estrutura", id.String())
}
