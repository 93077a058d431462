package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreparationFailedError_WrapsCause(t *testing.T) {
	cause := errors.New("no connections available")
	err := NewPreparationFailedError("SELECT * FROM user", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `failed to prepare "SELECT * FROM user": no connections available`, err.Error())
}

func TestIsPreparationFailed(t *testing.T) {
	prepErr := NewPreparationFailedError("SELECT 1", errors.New("syntax error"))

	assert.True(t, IsPreparationFailed(prepErr))
	assert.True(t, IsPreparationFailed(fmt.Errorf("template: %w", prepErr)))
	assert.False(t, IsPreparationFailed(ErrInvalidQuery))
	assert.False(t, IsPreparationFailed(nil))
}
