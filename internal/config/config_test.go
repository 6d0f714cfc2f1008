package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 600, cfg.Cache.PlanTTLSeconds)
	assert.Equal(t, "lot-plans", cfg.Storage.Bucket)
	assert.Equal(t, 1000, cfg.Solver.MaxPeriods)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Positive(t, cfg.Solver.BatchWorkers)
}

func TestFromViper_Overrides(t *testing.T) {
	t.Setenv("SOLVER_MAX_PERIODS", "52")
	t.Setenv("CACHE_ENABLED", "true")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)
	assert.Equal(t, 52, cfg.Solver.MaxPeriods)
	assert.True(t, cfg.Cache.Enabled)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "lotplan", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=lotplan sslmode=disable", c.DSN())
}
