package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("SMTP_PORT", "587")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
		t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
		t.Setenv("INTERNAL_SECRET_KEY", "internal")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, 587, cfg.SMTPPort)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		assert.Equal(t, "internal", cfg.InternalSecretKey)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("APP_PORT", "")
		t.Setenv("SESSION_TTL", "not-a-duration")
		t.Setenv("SCHEDULER_INTERVAL", "")
		t.Setenv("REDIS_DB", "x")
		t.Setenv("KAFKA_BROKERS", "")
		t.Setenv("IMAGE_DIR", "")

		cfg := LoadConfig()

		assert.Equal(t, "3001", cfg.AppPort)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, 7*24*time.Hour, cfg.SchedulerInterval)
		assert.Equal(t, 0, cfg.RedisDB)
		assert.Nil(t, cfg.KafkaBrokers)
		assert.Equal(t, "./client/public/products", cfg.ImageDir)
	})
}
