package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID indica un identificador con formato inválido; se
// distingue de "no encontrado" para responder 400 en vez de 404.
var ErrInvalidID = errors.New("invalid id format")

func validateID(id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidID
	}
	return nil
}
