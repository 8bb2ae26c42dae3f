package refdeck_test

import (
	"errors"
	"testing"

	"github.com/jbartnik/refdeck"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := refdeck.Errorf(refdeck.ENOTFOUND, "article %q not found", "abc")

	assert.Equal(t, refdeck.ENOTFOUND, refdeck.ErrorCode(err))
	assert.Equal(t, "article \"abc\" not found", refdeck.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, refdeck.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, refdeck.EINTERNAL, refdeck.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, refdeck.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An internal error has occurred.", refdeck.ErrorMessage(errors.New("boom")))
}
