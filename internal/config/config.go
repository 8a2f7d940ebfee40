package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"forklift_tracker/internal/activity"
	"forklift_tracker/internal/retention"
)

// Config is everything the process reads from the environment, loaded
// once in main and passed down explicitly.
type Config struct {
	ListenAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	// Classifier policy knobs; defaults match the fleet hardware.
	Thresholds activity.Thresholds

	// How often the retention sweep runs.
	SweepInterval time.Duration
}

// Load reads .env (if present) and the environment. Every value has a
// development default.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on environment variables")
	}

	th := activity.DefaultThresholds()
	th.MovementSpeedKmh = getEnvFloat("MOVEMENT_SPEED_KMH", th.MovementSpeedKmh)
	th.ForkRaisedCm = getEnvFloat("FORK_RAISED_CM", th.ForkRaisedCm)
	th.ForkPalletCm = getEnvFloat("FORK_PALLET_CM", th.ForkPalletCm)
	th.VibrationNoiseFloor = getEnvFloat("VIBRATION_NOISE_FLOOR", th.VibrationNoiseFloor)
	th.BatteryCriticalPct = getEnvFloat("BATTERY_CRITICAL_PCT", th.BatteryCriticalPct)
	th.BatteryGoodPct = getEnvFloat("BATTERY_GOOD_PCT", th.BatteryGoodPct)
	th.BatteryLowMaxPct = getEnvFloat("BATTERY_LOW_MAX_PCT", th.BatteryLowMaxPct)
	th.HighProductivityBatteryPct = getEnvFloat("HIGH_PRODUCTIVITY_BATTERY_PCT", th.HighProductivityBatteryPct)

	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "forklift_tracker"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),

		Thresholds:    th,
		SweepInterval: getEnvDuration("RETENTION_SWEEP_INTERVAL", retention.DefaultInterval),
	}
}

// getEnv reads an environment variable or returns the provided default.
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logrus.WithField("key", key).Warnf("ignoring unparseable value %q", v)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithField("key", key).Warnf("ignoring unparseable value %q", v)
		return defaultValue
	}
	return parsed
}
