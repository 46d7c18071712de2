package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/fox-gestion/internal/domain"
)

func TestValidationf(t *testing.T) {
	err := domain.Validationf("el campo '%s' es obligatorio", "fecha")

	assert.Equal(t, "el campo 'fecha' es obligatorio", err.Error())
	assert.True(t, domain.IsValidation(err))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "toda validación pertenece a la familia ErrInvalidInput")
}

func TestIsValidation_Envuelto(t *testing.T) {
	envuelto := fmt.Errorf("crear cobro: %w", domain.Validationf("monto inválido"))
	assert.True(t, domain.IsValidation(envuelto))

	assert.False(t, domain.IsValidation(domain.ErrDuplicate))
	assert.False(t, domain.IsValidation(errors.New("otro error")))
}
