package errors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"
	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "app error passes through wrapped",
			err:        fmt.Errorf("service: %w", appErrors.ErrSectorNotFound),
			wantCode:   "SECTOR_NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "reorder persistence",
			err:        &ordering.ReorderPersistenceError{Updates: []ordering.Update{{ID: "a", Order: 1}}, Err: errors.New("tx aborted")},
			wantCode:   "REORDER_PERSISTENCE_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "reorder in flight",
			err:        ordering.ErrReorderInFlight,
			wantCode:   "REORDER_IN_PROGRESS",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "index out of range",
			err:        fmt.Errorf("%w: 9", ordering.ErrIndexOutOfRange),
			wantCode:   "VALIDATION_ERROR",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "mapping gap",
			err:        &taxonomy.MappingGapError{Level: 5},
			wantCode:   "MAPPING_GAP",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid mapping",
			err:        &taxonomy.MappingError{Level: 4, Reason: "level declared twice"},
			wantCode:   "INVALID_LEVEL_MAPPING",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "depth",
			err:        &taxonomy.DepthError{Depth: 9},
			wantCode:   "VALIDATION_ERROR",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "canceled",
			err:        context.Canceled,
			wantCode:   "REQUEST_CANCELED",
			wantStatus: http.StatusRequestTimeout,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantCode:   "UNKNOWN_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := appErrors.FromError(tt.err)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
		})
	}
}

func TestFromError_MappingGapCarriesLevel(t *testing.T) {
	appErr := appErrors.FromError(&taxonomy.MappingGapError{Level: 6})
	assert.Equal(t, 6, appErr.Details["level"])
	assert.Equal(t, 0, len(appErrors.ErrMappingGap.Details), "sentinel must not be mutated")
}

func TestParseValidationErrors(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Level int    `validate:"min=3,max=7"`
	}

	err := validator.New().Struct(payload{Level: 9})
	require.Error(t, err)

	appErr := appErrors.ParseValidationErrors(err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields, ok := appErr.Details["fields"].([]map[string]string)
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "nome", fields[0]["field"])
	assert.Equal(t, "nome é obrigatório", fields[0]["message"])
	assert.Equal(t, "nível deve ter no máximo 7", fields[1]["message"])
}

func TestParseValidationErrors_NonValidatorError(t *testing.T) {
	appErr := appErrors.ParseValidationErrors(errors.New("unexpected EOF"))
	assert.Equal(t, "BAD_REQUEST", appErr.Code)
}
