package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/flashcards/internal/errors"
)

func TestAppError_Error(t *testing.T) {
	err := errors.NewDuplicateError("term", "Paris")
	assert.Equal(t, `DUPLICATE: term already exists: "Paris"`, err.Error())

	wrapped := errors.NewFileNotFoundError("cards.txt", fs.ErrNotExist)
	assert.Contains(t, wrapped.Error(), "FILE_NOT_FOUND: file not found: cards.txt")
	assert.Contains(t, wrapped.Error(), fs.ErrNotExist.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	err := errors.NewFileNotFoundError("cards.txt", fs.ErrNotExist)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{name: "matching code", err: errors.NewNotFoundError("card", "Paris"), code: errors.ErrCodeNotFound, want: true},
		{name: "other code", err: errors.NewNotFoundError("card", "Paris"), code: errors.ErrCodeDuplicate, want: false},
		{name: "wrapped app error", err: fmt.Errorf("remove: %w", errors.NewParseError(3, "bad")), code: errors.ErrCodeParse, want: true},
		{name: "plain error", err: stderrors.New("boom"), code: errors.ErrCodeInternal, want: false},
		{name: "nil error", err: nil, code: errors.ErrCodeInternal, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.HasCode(tt.err, tt.code))
		})
	}
}
