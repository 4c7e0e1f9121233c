package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewValidationError("bad header"),
			want: "[VALIDATION] bad header",
		},
		{
			name: "with cause",
			err:  NewStorageError("cannot write file", stderrors.New("disk full")),
			want: "[STORAGE] cannot write file: disk full",
		},
		{
			name: "not found",
			err:  NewNotFoundError("input CSV"),
			want: "[NOT_FOUND] input CSV not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := NewParsingError("row 3 unreadable", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, ErrTypeParsing, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewRenderError("chart failed", nil).
		WithContext("chart", "01_piva_po_danu").
		WithContext("participants", 0)

	assert.Equal(t, "01_piva_po_danu", err.Context["chart"])
	assert.Equal(t, 0, err.Context["participants"])
}

func TestIsType(t *testing.T) {
	err := NewConfigError("invalid reference date", nil)

	assert.True(t, IsType(err, ErrTypeConfig))
	assert.False(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeConfig))
}
