package configs

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Conf struct {
	ServiceName       string  `mapstructure:"SERVICE_NAME"`
	Environment       string  `mapstructure:"ENVIRONMENT"`
	LogLevel          string  `mapstructure:"LOG_LEVEL"`
	DBDriver          string  `mapstructure:"DB_DRIVER"`
	DBHost            string  `mapstructure:"DB_HOST"`
	DBPort            string  `mapstructure:"DB_PORT"`
	DBUser            string  `mapstructure:"DB_USER"`
	DBPassword        string  `mapstructure:"DB_PASSWORD"`
	DBName            string  `mapstructure:"DB_NAME"`
	WebServerPort     string  `mapstructure:"WEB_SERVER_PORT"`
	OtelCollectorAddr string  `mapstructure:"OTEL_COLLECTOR_ADDR"`
	OtelSampleRatio   float64 `mapstructure:"OTEL_SAMPLE_RATIO"`
	RateLimitRPS      int     `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int     `mapstructure:"RATE_LIMIT_BURST"`
	SMTPHost          string  `mapstructure:"SMTP_HOST"`
	SMTPPort          int     `mapstructure:"SMTP_PORT"`
	SMTPUsername      string  `mapstructure:"SMTP_USERNAME"`
	SMTPPassword      string  `mapstructure:"SMTP_PASSWORD"`
	MailFrom          string  `mapstructure:"MAIL_FROM"`
	MailTo            string  `mapstructure:"MAIL_TO"`
}

func (c *Conf) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Conf) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "goevents")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("WEB_SERVER_PORT", "8080")
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM", "no-reply@goevents.local")
}

// LoadConfig reads <path>/.env, letting environment variables override it.
// A missing .env file is not an error.
func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{"LOG_LEVEL", "DB_USER", "DB_PASSWORD", "DB_NAME", "OTEL_COLLECTOR_ADDR",
		"SMTP_HOST", "SMTP_USERNAME", "SMTP_PASSWORD", "MAIL_TO"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
