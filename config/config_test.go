package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "mongodb://localhost:27017", AppConfig.MongoURI)
	assert.Equal(t, "bookstore", AppConfig.DBName)
	assert.Equal(t, 10, AppConfig.SaltRound)
	assert.False(t, AppConfig.AllowGuestReviews)
	assert.Equal(t, "@every 10m", AppConfig.ReviewReconcileCron)
	assert.False(t, AppConfig.EnrichMetadata)
	assert.Equal(t, "https://openlibrary.org", AppConfig.OpenLibraryURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("SALT_ROUND", "12")
	t.Setenv("ALLOW_GUEST_REVIEWS", "true")
	t.Setenv("REVIEW_RECONCILE_CRON", "off")
	t.Setenv("ENRICH_METADATA", "1")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "supersecret", AppConfig.JWTKey)
	assert.Equal(t, 12, AppConfig.SaltRound)
	assert.True(t, AppConfig.AllowGuestReviews)
	assert.Equal(t, "off", AppConfig.ReviewReconcileCron)
	assert.True(t, AppConfig.EnrichMetadata)
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("SALT_ROUND", "not-a-number")
	assert.Equal(t, 10, getEnvInt("SALT_ROUND", 10))
}
