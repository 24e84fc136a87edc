package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Cipher CipherConfig
	Twilio TwilioConfig
}

type AppConfig struct {
	Port string
	Env  string
	// EmergencyDomain is the public host embedded in emergency URLs and QR codes,
	// e.g. "emergency.crisislink.cv".
	EmergencyDomain string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// CipherConfig holds the process-wide Fernet key used for medical data
// encryption. The key must be supplied externally; generating one per process
// would make previously encrypted rows undecryptable after a restart.
type CipherConfig struct {
	Key string
}

// TwilioConfig holds outbound SMS credentials. All fields empty means the
// notification dispatcher runs in dry-run mode (messages logged, not sent).
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	cipherKey := viper.GetString("CIPHER_KEY")
	if cipherKey == "" {
		return nil, errors.New("CIPHER_KEY is required")
	}

	emergencyDomain := viper.GetString("EMERGENCY_DOMAIN")
	if emergencyDomain == "" {
		emergencyDomain = "emergency.crisislink.cv"
	}

	config := &Config{
		App: AppConfig{
			Port:            viper.GetString("APP_PORT"),
			Env:             viper.GetString("APP_ENV"),
			EmergencyDomain: emergencyDomain,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Cipher: CipherConfig{
			Key: cipherKey,
		},
		Twilio: TwilioConfig{
			AccountSID: viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:  viper.GetString("TWILIO_AUTH_TOKEN"),
			FromNumber: viper.GetString("TWILIO_PHONE_NUMBER"),
		},
	}

	return config, nil
}
