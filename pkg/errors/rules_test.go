// Test Type: Unit Test
// Description: Tests for the rule error constructors and their details

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewArityError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		got      int
		wantMsg  string
	}{
		{"exact", 1, 1, 0, "rule 'x' takes 1 argument(s), got 0"},
		{"range", 0, 2, 3, "rule 'x' takes 0 to 2 argument(s), got 3"},
		{"unbounded", 1, -1, 0, "rule 'x' takes at least 1 argument(s), got 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.NewArityError("x", tt.min, tt.max, tt.got)
			assert.Equal(t, errors.ErrArity, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.got, err.Details[errors.DetailGot])
		})
	}
}

func TestNewTransformationError_Details(t *testing.T) {
	cause := stderrors.New("illegal base64 data")
	err := errors.NewTransformationError(cause, "unb64", 1, 42)

	assert.True(t, errors.IsErrorCode(err, errors.ErrTransformation))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "unb64", err.Details[errors.DetailCode])
	assert.Equal(t, 1, err.Details[errors.DetailPosition])
	assert.Equal(t, 42, err.Details[errors.DetailInputLength])
	assert.Contains(t, err.Error(), "step 2")
}

func TestNewTransformationError_NilCause(t *testing.T) {
	err := errors.NewTransformationError(nil, "t", 0, 0)
	assert.NotNil(t, err.Wrapped)
}

func TestNewCapabilityUnavailableError(t *testing.T) {
	cause := stderrors.New("key dir not writable")
	err := errors.NewCapabilityUnavailableError("enc", "crypt", cause)

	assert.Equal(t, errors.ErrCapabilityUnavailable, errors.GetErrorCode(err))
	assert.False(t, errors.IsErrorCode(err, errors.ErrUnknownRule))
	assert.Equal(t, "crypt", err.Details[errors.DetailProvider])
	assert.ErrorIs(t, err, cause)
}

func TestNewParseAndDuplicate(t *testing.T) {
	pe := errors.NewParseError("/", "no rules found")
	assert.Equal(t, "/", errors.GetErrorDetails(pe)[errors.DetailInput])
	assert.Contains(t, pe.Error(), "no rules found")

	de := errors.NewDuplicateRuleError("t")
	assert.Equal(t, errors.ErrDuplicateRule, de.Code)
}
