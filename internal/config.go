/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries environment-provided defaults for the CLI. Flags override
// every field.
type Config struct {
	Simulations int   `mapstructure:"SIMULATIONS"`
	Workers     int   `mapstructure:"WORKERS"`
	Seed        int64 `mapstructure:"SEED"`
}

// LoadConfig reads SWISSSIM_* environment variables, falling back to an
// optional .env file in the working directory.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SWISSSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SIMULATIONS", DefaultSimulations)
	v.SetDefault("WORKERS", 0)
	v.SetDefault("SEED", 0)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// config file is optional; env and defaults still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
