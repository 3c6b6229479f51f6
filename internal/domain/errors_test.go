package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Marketplace-api/internal/domain"
)

func TestErrorKinds(t *testing.T) {
	err := domain.NewNotFoundError("producto con ID %d no encontrado", 7)
	assert.Equal(t, "producto con ID 7 no encontrado", err.Error())
	assert.True(t, domain.IsNotFound(err))
	assert.False(t, domain.IsValidation(err))

	wrapped := fmt.Errorf("crear venta: %w", domain.NewConflictError("duplicado"))
	assert.True(t, domain.IsConflict(wrapped))
}

func TestRefinementsAreValidation(t *testing.T) {
	for _, kind := range []error{domain.ErrInvalidRole, domain.ErrInvalidCommissionRate, domain.ErrProductUnavailable} {
		err := &domain.Error{Kind: kind}
		assert.True(t, domain.IsValidation(err), kind.Error())
		assert.True(t, errors.Is(err, kind))
		// sin mensaje se usa el del tipo
		assert.Equal(t, kind.Error(), err.Error())
	}
}
