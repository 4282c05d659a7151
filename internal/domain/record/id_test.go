package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid hex id",
			raw:  "507f1f77bcf86cd799439011",
		},
		{
			name:    "not an id at all",
			raw:     "not-a-valid-id-format",
			wantErr: true,
		},
		{
			name:    "too short",
			raw:     "507f1f77",
			wantErr: true,
		},
		{
			name:    "wrong alphabet",
			raw:     "zzzzzzzzzzzzzzzzzzzzzzzz",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, FormatID(id))
		})
	}
}

func TestFormatID_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := ParseID(FormatID(id))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}
