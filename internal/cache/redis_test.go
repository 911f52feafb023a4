package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocodeKeyNormalizesQuery(t *testing.T) {
	assert.Equal(t, geocodeKey("Lipa, Batangas"), geocodeKey("  lipa, batangas "))
	assert.NotEqual(t, geocodeKey("Lipa"), geocodeKey("Cebu"))
	assert.Contains(t, geocodeKey("Lipa"), "geocode:")
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}
