package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name: "defaults",
			body: "env: production\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "production", cfg.Env)
				assert.Equal(t, "sqlite3", cfg.DB.Driver)
				assert.Equal(t, 25, cfg.Quiz.SessionSize)
				assert.Equal(t, 0.5, cfg.Quiz.DefaultWeight)
				assert.Equal(t, 0.618, cfg.Quiz.ReportDecay)
				assert.Equal(t, "pt", cfg.Quiz.LangA)
				assert.Equal(t, []string{"say", "-v", "Joana", "--rate", "90"}, cfg.Speech.Command)
			},
		},
		{
			name: "file overrides",
			body: `
db:
  driver: postgres
  dsn: postgres://pt:pt@localhost/pt?sslmode=disable
quiz:
  words_file: words/de.md
  session_size: 10
  lang_a: de
speech:
  enabled: false
telegram:
  chat_id: 42
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "postgres", cfg.DB.Driver)
				assert.Equal(t, "words/de.md", cfg.Quiz.WordsFile)
				assert.Equal(t, 10, cfg.Quiz.SessionSize)
				assert.Equal(t, "de", cfg.Quiz.LangA)
				assert.Equal(t, "en", cfg.Quiz.LangB)
				assert.False(t, cfg.Speech.Enabled)
				assert.Equal(t, int64(42), cfg.Telegram.ChatID)
			},
		},
		{
			name:    "unknown driver",
			body:    "db:\n  driver: mongo\n",
			wantErr: true,
		},
		{
			name:    "weight out of range",
			body:    "quiz:\n  default_weight: 1.5\n",
			wantErr: true,
		},
		{
			name:    "empty session",
			body:    "quiz:\n  session_size: 0\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Init(writeConfig(t, tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestInit_envOverride(t *testing.T) {
	t.Setenv("PT_QUIZ_SESSION_SIZE", "7")
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Init(writeConfig(t, "env: development\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Quiz.SessionSize)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
}

func TestInit_missingFile(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
