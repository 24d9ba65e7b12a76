package config

import "fmt"

type ServerConfig struct {
	Host                string   `mapstructure:"host"`
	Port                int      `mapstructure:"port"`
	Mode                string   `mapstructure:"mode"`
	BaseURL             string   `mapstructure:"base_url"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	FrontendCallbackURL string   `mapstructure:"frontend_callback_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	JWT    JWTConfig    `mapstructure:"jwt"`
	Cookie CookieConfig `mapstructure:"cookie"`
}

type GoogleOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type OAuthConfig struct {
	Google GoogleOAuthConfig `mapstructure:"google"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// BillingConfig holds the Lemon Squeezy API and webhook settings.
type BillingConfig struct {
	APIKey        string `mapstructure:"api_key"`
	StoreID       string `mapstructure:"store_id"`
	VariantID     string `mapstructure:"variant_id"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	SuccessURL    string `mapstructure:"success_url"`
}
