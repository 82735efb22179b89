package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/akuhn/pt/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `mapstructure:"env" validate:"oneof=development production"`
	DB       DBConfig       `mapstructure:"db" validate:"required"`
	Quiz     QuizConfig     `mapstructure:"quiz" validate:"required"`
	Speech   SpeechConfig   `mapstructure:"speech"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	DSN    string `mapstructure:"dsn" validate:"required"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type QuizConfig struct {
	WordsFile     string  `mapstructure:"words_file" validate:"required"`
	SessionSize   int     `mapstructure:"session_size" validate:"min=1"`
	DefaultWeight float64 `mapstructure:"default_weight" validate:"min=0,max=1"`
	LangA         string  `mapstructure:"lang_a" validate:"required"`
	LangB         string  `mapstructure:"lang_b" validate:"required"`
	ReportDecay   float64 `mapstructure:"report_decay" validate:"gt=0,lt=1"`
}

type SpeechConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Command []string `mapstructure:"command" validate:"required_if=Enabled true"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "portugese_words_100.sqlite")
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.cfg.max_idle_conns", 1)
	v.SetDefault("db.cfg.conn_max_life_time", time.Duration(0))
	v.SetDefault("db.cfg.conn_max_idle_time", time.Duration(0))

	v.SetDefault("quiz.words_file", "portugese_words_100.md")
	v.SetDefault("quiz.session_size", 25)
	v.SetDefault("quiz.default_weight", 0.5)
	v.SetDefault("quiz.lang_a", "pt")
	v.SetDefault("quiz.lang_b", "en")
	v.SetDefault("quiz.report_decay", 0.618)

	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.command", []string{"say", "-v", "Joana", "--rate", "90"})

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
}

// Init reads the configuration. path selects a config file; when empty, the file named
// by CONFIG_NAME (default "default") is looked up in ./configs and may be absent.
// Environment variables with the PT_ prefix override file values.
func Init(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("pt")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("telegram.bot_token", "PT_TELEGRAM_BOT_TOKEN", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("db.driver", "PT_DB_DRIVER", "DB_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_DRIVER: %w", err)
	}
	if err := v.BindEnv("db.dsn", "PT_DB_DSN", "DB_DSN"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_DSN: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		configName := os.Getenv("CONFIG_NAME")
		if configName == "" {
			configName = "default"
		}
		v.AddConfigPath("configs")
		v.SetConfigName(configName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
