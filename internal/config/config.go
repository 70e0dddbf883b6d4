package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"connectfour.log"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Width     int `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
	Height    int `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
	RunLength int `yaml:"run-length" env:"BOARD_RUN_LENGTH" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, applies env overrides and validates the board.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Board.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	return config, nil
}

func (that *Board) Validate() error {
	if that.Width <= 0 || that.Height <= 0 || that.RunLength <= 0 {
		return fmt.Errorf("%w: %dx%d, run length %d", apperror.ErrInvalidDimensions, that.Width, that.Height, that.RunLength)
	}

	return nil
}
