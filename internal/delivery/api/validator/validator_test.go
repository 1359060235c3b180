package validator

import (
	"testing"

	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type businessRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Municipality *string `json:"municipality" validate:"omitempty,municipality"`
	LocationType *string `json:"location_type" validate:"omitempty,location_type"`
	BusinessType *string `json:"business_type" validate:"omitempty,business_type"`
}

func strPtr(s string) *string {
	return &s
}

func TestEchoValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        businessRequest
		wantFields []string
	}{
		{
			name: "valid with lowercase codes",
			req: businessRequest{
				Name:         "Tienda Lupita",
				Municipality: strPtr("moroleon"),
				LocationType: strPtr("plaza_textil"),
				BusinessType: strPtr("CALZADO"),
			},
		},
		{
			name: "optional enums omitted",
			req:  businessRequest{Name: "Tienda Lupita"},
		},
		{
			name:       "missing name",
			req:        businessRequest{},
			wantFields: []string{"name is required"},
		},
		{
			name: "unknown enum values",
			req: businessRequest{
				Name:         "Tienda Lupita",
				Municipality: strPtr("Monterrey"),
				LocationType: strPtr("KIOSKO"),
				BusinessType: strPtr("ASTILLEROS"),
			},
			wantFields: []string{
				"municipality is not a valid municipality",
				"location_type is not a valid location type",
				"business_type is not a valid business type",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantFields == nil {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			verr, ok := errors.AsType[*ValidationError](err)
			require.True(t, ok)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}
