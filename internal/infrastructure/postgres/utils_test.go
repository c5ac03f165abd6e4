package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCodigosPostgres(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	serial := &pgconn.PgError{Code: pgerrcode.SerializationFailure}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(serial))
	assert.True(t, isSerializationFailure(serial))
	assert.False(t, isSerializationFailure(errors.New("conexión cerrada")))
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, 50, 0},
		{500, -3, 50, 0},
		{20, 40, 20, 40},
	}
	for _, tt := range tests {
		l, o := normalizePage(tt.limit, tt.offset)
		assert.Equal(t, tt.wantLimit, l)
		assert.Equal(t, tt.wantOffset, o)
	}
}
