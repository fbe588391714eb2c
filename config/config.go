package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	cfgFile = "connect4/config.json"
	logFile = "connect4/connect4.log"
)

const (
	OpponentMinimax = "minimax"
	OpponentRandom  = "random"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	EmptyColor        int `json:"empty"`
	PlayerAColor      int `json:"player_a"`
	PlayerBColor      int `json:"player_b"`
	CursorColorFG     int `json:"cursor_fg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	WinColorBG        int `json:"win_bg"`
}

type ConfigSymbols struct {
	PlayerADisc rune `json:"player_a"`
	PlayerBDisc rune `json:"player_b"`
	EmptyCell   rune `json:"empty"`
	Cursor      rune `json:"cursor"`
}

type Theme struct {
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameConfig holds the settings of the computer opponent.
type GameConfig struct {
	Opponent string `json:"opponent"` // OpponentMinimax or OpponentRandom
	Seed     uint64 `json:"seed"`     // Random opponent only
}

type Config struct {
	Theme    Theme      `json:"theme"`
	Game     GameConfig `json:"game"`
	LogLevel string     `json:"log_level"`
	LogFile  string     `json:"log_file"` // Defaults to the XDG cache dir
}

// InitConfig loads the config file from the XDG config dirs, applies
// environment overrides on top and validates the result. When no config file
// exists the defaults are written to the XDG config home first.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		defaults := DefaultConfig
		if err := defaults.Save(); err != nil {
			log.Warn().Err(err).Msg("failed to write default config")
		}
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config at path over the defaults. An empty or missing path
// leaves the defaults in place.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	config.ApplyEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.PlayerADisc, c.Theme.Symbols.PlayerBDisc, c.Theme.Symbols.EmptyCell, c.Theme.Symbols.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	switch c.Game.Opponent {
	case OpponentMinimax, OpponentRandom:
	default:
		return &InvalidConfig{fmt.Sprintf("unknown opponent %q", c.Game.Opponent)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// LogFilePath returns the configured log file, or a file in the XDG cache dir
func (c *Config) LogFilePath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.CacheFile(logFile)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
