package migrations

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Схема владения: удаление пользователя убирает его бронирования и отзывы,
// удаление корта/площадки - зависимые бронирования, корты, отзывы и турниры
func TestSchema_OwnershipCascades(t *testing.T) {
	schema, err := os.ReadFile("0001_init.sql")
	require.NoError(t, err)

	cascades := []struct {
		column string
		target string
	}{
		{"user_id", "users"},   // bookings, reviews
		{"court_id", "courts"}, // bookings
		{"venue_id", "venues"}, // courts, reviews, tournaments
	}

	for _, c := range cascades {
		// Каждая ссылка на владельца каскадная, без исключений
		plain := regexp.MustCompile(c.column + `\s+BIGINT\s+NOT NULL REFERENCES ` + c.target + ` \(id\)(,|\s*$)`)
		assert.False(t, plain.Match(schema),
			"%s reference to %s must be ON DELETE CASCADE", c.column, c.target)

		cascade := regexp.MustCompile(c.column + `\s+BIGINT\s+NOT NULL REFERENCES ` + c.target + ` \(id\) ON DELETE CASCADE`)
		assert.True(t, cascade.Match(schema),
			"%s reference to %s is missing", c.column, c.target)
	}
}

func TestSchema_ConfirmedOverlapConstraint(t *testing.T) {
	schema, err := os.ReadFile("0001_init.sql")
	require.NoError(t, err)

	// Последний рубеж против гонки бронирований должен остаться в схеме
	assert.Regexp(t, `EXCLUDE USING gist`, string(schema))
	assert.Regexp(t, `WHERE \(status = 'confirmed'\)`, string(schema))
}
