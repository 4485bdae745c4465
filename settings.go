package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings are the runtime options for one invocation. Precedence:
// command-line flags, then CMDLE_* environment variables (a .env file is
// loaded first), then defaults.
type Settings struct {
	Dir         string `mapstructure:"dir"`
	AnswersFile string `mapstructure:"answers-file"`
	AllowedFile string `mapstructure:"allowed-file"`
	History     bool   `mapstructure:"history"`
	Color       bool   `mapstructure:"color"`
	LogLevel    string `mapstructure:"log-level"`
}

// defaultDir is where snapshots live when --dir is not given.
func defaultDir() string {
	if d, err := os.UserConfigDir(); err == nil {
		return filepath.Join(d, "cmdle")
	}
	return ".cmdle"
}

// addSettingsFlags declares the persistent flags every command accepts.
func addSettingsFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("dir", defaultDir(), "directory holding game.json, config.json and history.db")
	f.String("answers-file", "", "ordered goal word list (.txt or .json)")
	f.String("allowed-file", "", "allowed guess word list (.txt or .json)")
	f.Bool("history", true, "record finished games for `cmdle stats`")
	f.Bool("color", isatty.IsTerminal(os.Stdout.Fd()), "colour the output")
	f.String("log-level", "warn", "log level (debug, info, warn, error)")
}

// loadSettings resolves Settings from cmd's flags and the environment.
func loadSettings(v *viper.Viper, cmd *cobra.Command) (Settings, error) {
	v.SetEnvPrefix("CMDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// The server's variable names still work as fallbacks.
	for key, envs := range map[string][]string{
		"answers-file": {"CMDLE_ANSWERS_FILE", "WORDS_ANSWERS_FILE"},
		"allowed-file": {"CMDLE_ALLOWED_FILE", "WORDS_ALLOWED_FILE"},
		"log-level":    {"CMDLE_LOG_LEVEL", "LOG_LEVEL"},
	} {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Settings{}, err
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
