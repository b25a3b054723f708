package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	AI    AIConfig
	OCR   OCRConfig
	Shell ShellConfig
	Seed  SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerPath string // vacío = Swagger UI deshabilitado
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIConfig proveedor de visión generativa usado por el endpoint /api/ocr.
type AIConfig struct {
	Provider        string // gemini | anthropic
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

// OCRConfig cómo obtiene el flujo de captura de gastos los items de un ticket.
//   - direct: llama al proveedor de IA dentro del proceso.
//   - remote: consume POST /api/ocr de otro servidor Nyx (RemoteURL).
type OCRConfig struct {
	Mode       string
	RemoteURL  string
	Timeout    time.Duration
	RatePerMin int // peticiones por minuto y por IP al endpoint público
}

// ShellConfig parámetros del gestor de tarjetas.
type ShellConfig struct {
	AnimationDelay time.Duration
}

// SeedConfig contraseñas de los usuarios no-empleado sembrados al arranque.
type SeedConfig struct {
	AdminPassword     string
	DeveloperPassword string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, GEMINI_API_KEY, OCR_MODE, etc.
func Load() (*Config, error) {
	cfg := read()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOCR igual que Load pero sin exigir la configuración del servidor HTTP (JWT);
// para herramientas de línea de comandos que solo llaman al OCR.
func LoadOCR() (*Config, error) {
	cfg := read()
	if err := cfg.validateOCR(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read() *Config {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "nyx-os"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*12),
			Issuer:     getString(v, "JWT_ISSUER", "nyx-os"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 3001),
			SwaggerPath: getString(v, "HTTP_SWAGGER_PATH", "docs"),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "gemini")),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
		OCR: OCRConfig{
			Mode:       strings.ToLower(getString(v, "OCR_MODE", "direct")),
			RemoteURL:  getString(v, "OCR_REMOTE_URL", ""),
			Timeout:    time.Duration(getInt(v, "OCR_TIMEOUT_SECONDS", 30)) * time.Second,
			RatePerMin: getInt(v, "OCR_RATE_PER_MIN", 30),
		},
		Shell: ShellConfig{
			AnimationDelay: time.Duration(getInt(v, "SHELL_ANIMATION_MS", 500)) * time.Millisecond,
		},
		Seed: SeedConfig{
			AdminPassword:     getString(v, "ADMIN_PASSWORD", ""),
			DeveloperPassword: getString(v, "DEVELOPER_PASSWORD", ""),
		},
	}

	return cfg
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if err := c.validateOCR(); err != nil {
		return err
	}
	if c.Shell.AnimationDelay < 0 {
		return fmt.Errorf("config: SHELL_ANIMATION_MS no puede ser negativo")
	}
	return nil
}

func (c *Config) validateOCR() error {
	switch c.OCR.Mode {
	case "direct":
	case "remote":
		if c.OCR.RemoteURL == "" {
			return fmt.Errorf("config: OCR_REMOTE_URL es obligatorio con OCR_MODE=remote")
		}
	default:
		return fmt.Errorf("config: OCR_MODE inválido %q (direct|remote)", c.OCR.Mode)
	}
	if c.OCR.Timeout <= 0 {
		return fmt.Errorf("config: OCR_TIMEOUT_SECONDS debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
