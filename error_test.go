package headlines_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := headlines.Errorf(headlines.EUNAVAILABLE, "%s status %d", "https://example.com/", 404)

	assert.Equal(t, headlines.EUNAVAILABLE, headlines.ErrorCode(err))
	assert.Equal(t, "https://example.com/ status 404", headlines.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", headlines.Errorf(headlines.EINVALID, "bad site"))

	assert.Equal(t, headlines.EINVALID, headlines.ErrorCode(err))
	assert.Equal(t, "bad site", headlines.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, headlines.EINTERNAL, headlines.ErrorCode(err))
	assert.Equal(t, "Internal error", headlines.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, headlines.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, headlines.ErrorMessage(nil))
}
