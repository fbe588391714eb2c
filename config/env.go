package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnv reads .env files into the process environment without overriding
// variables that are already set. It defaults to .env in the working directory.
// Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides the config with LOG_LEVEL, CONNECT4_OPPONENT,
// CONNECT4_SEED and CONNECT4_LOG_FILE when they are set
func (c *Config) ApplyEnv() {
	c.LogLevel = GetEnv("LOG_LEVEL", c.LogLevel)
	c.Game.Opponent = GetEnv("CONNECT4_OPPONENT", c.Game.Opponent)
	if seed := GetEnvAsInt("CONNECT4_SEED", -1); seed >= 0 {
		c.Game.Seed = uint64(seed)
	}
	c.LogFile = GetEnv("CONNECT4_LOG_FILE", c.LogFile)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
