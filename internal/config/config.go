package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            int
	OpenAIKey       string
	OpenAIModel     string
	DiscordToken    string
	ExperienceFile  string
	PersonalFile    string
	OutputDir       string
	LedgerFile      string
	WkhtmltopdfPath string
	ChromePath      string
	DisableFallback bool
	DisplayName     string
	SourceTitle     string
	AlternateTitle  string
	ContactLine     string
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getInt("PORT", 8080),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4.1"),
		DiscordToken:    os.Getenv("DISCORD_BOT_TOKEN"),
		ExperienceFile:  getEnv("EXPERIENCE_FILE", "resume_data/experience.md"),
		PersonalFile:    getEnv("PERSONAL_INFO_FILE", "resume_data/personal_info.md"),
		OutputDir:       getEnv("OUTPUT_DIR", "generated_resumes"),
		LedgerFile:      getEnv("LEDGER_FILE", "output.csv"),
		WkhtmltopdfPath: os.Getenv("WKHTMLTOPDF_PATH"),
		ChromePath:      os.Getenv("CHROME_PATH"),
		DisableFallback: getBool("DISABLE_PDF_FALLBACK", false),
		DisplayName:     os.Getenv("RESUME_DISPLAY_NAME"),
		SourceTitle:     os.Getenv("RESUME_SOURCE_TITLE"),
		AlternateTitle:  os.Getenv("RESUME_ALTERNATE_TITLE"),
		ContactLine:     os.Getenv("RESUME_CONTACT_LINE"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch val {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return def
	}
}
