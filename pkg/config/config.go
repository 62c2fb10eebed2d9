package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Store     StoreConfig
	DB        DBConfig
	Firebase  FirebaseConfig
	Redis     RedisConfig
	Media     MediaConfig
	AI        AIConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig proveedor de sesiones y admin inicial opcional.
type AuthConfig struct {
	Provider      string // jwt | firebase
	AdminEmail    string
	AdminPassword string
}

// StoreConfig selecciona los adaptadores de persistencia.
type StoreConfig struct {
	Driver         string // postgres | firestore | memory
	SettingsDriver string // postgres | redis | firestore | memory
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// FirebaseConfig proyecto y credenciales de Firebase (Firestore y Auth).
type FirebaseConfig struct {
	ProjectID          string
	CredentialsFile    string // vacío = Application Default Credentials
	ProductsCollection string
	SettingsCollection string
}

// RedisConfig conexión al settings store en Redis.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// MediaConfig almacenamiento de imágenes.
type MediaConfig struct {
	BucketURL     string // file:///var/media, gs://bucket, mem://
	PublicBaseURL string
	RootFolder    string
	MaxWidth      int
	JPEGQuality   int
}

// Configured indica si hay un bucket definido.
func (c MediaConfig) Configured() bool {
	return c.BucketURL != ""
}

// AIConfig proveedor de generación de texto. La API key es por usuario (settings store).
type AIConfig struct {
	Provider    string // openai | anthropic | gemini
	Model       string
	Temperature float64
	MaxTokens   int
}

// InventoryConfig umbrales y valores por defecto del catálogo.
type InventoryConfig struct {
	StockCritical   int
	StockLow        int
	StockMedium     int
	DefaultCategory string
	ExportTitle     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
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
			Name:     getString(v, "APP_NAME", "catalogo-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "catalogo-admin"),
		},
		Auth: AuthConfig{
			Provider:      strings.ToLower(getString(v, "AUTH_PROVIDER", "jwt")),
			AdminEmail:    getString(v, "ADMIN_EMAIL", ""),
			AdminPassword: getString(v, "ADMIN_PASSWORD", ""),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(getString(v, "STORE_DRIVER", "postgres")),
			SettingsDriver: strings.ToLower(getString(v, "SETTINGS_DRIVER", "postgres")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "catalogo"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Firebase: FirebaseConfig{
			ProjectID:          getString(v, "FIREBASE_PROJECT_ID", ""),
			CredentialsFile:    getString(v, "FIREBASE_CREDENTIALS_FILE", ""),
			ProductsCollection: getString(v, "FIRESTORE_PRODUCTS_COLLECTION", "productos"),
			SettingsCollection: getString(v, "FIRESTORE_SETTINGS_COLLECTION", "ajustes"),
		},
		Redis: RedisConfig{
			Addr:      getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:  getString(v, "REDIS_PASSWORD", ""),
			DB:        getInt(v, "REDIS_DB", 0),
			KeyPrefix: getString(v, "REDIS_KEY_PREFIX", "catalogo:"),
		},
		Media: MediaConfig{
			BucketURL:     getString(v, "MEDIA_BUCKET_URL", ""),
			PublicBaseURL: getString(v, "MEDIA_PUBLIC_BASE_URL", ""),
			RootFolder:    getString(v, "MEDIA_ROOT_FOLDER", "limpiarte"),
			MaxWidth:      getInt(v, "MEDIA_MAX_WIDTH", 900),
			JPEGQuality:   getInt(v, "MEDIA_JPEG_QUALITY", 75),
		},
		AI: AIConfig{
			Provider:    strings.ToLower(getString(v, "AI_PROVIDER", "openai")),
			Model:       getString(v, "AI_MODEL", ""),
			Temperature: getFloat(v, "AI_TEMPERATURE", 0.8),
			MaxTokens:   getInt(v, "AI_MAX_TOKENS", 160),
		},
		Inventory: InventoryConfig{
			StockCritical:   getInt(v, "STOCK_THRESHOLD_CRITICAL", 5),
			StockLow:        getInt(v, "STOCK_THRESHOLD_LOW", 10),
			StockMedium:     getInt(v, "STOCK_THRESHOLD_MEDIUM", 15),
			DefaultCategory: getString(v, "IMPORT_DEFAULT_CATEGORY", "General"),
			ExportTitle:     getString(v, "EXPORT_TITLE", "Inventario - LimpiArte"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "postgres", "firestore", "memory":
	default:
		return fmt.Errorf("config: STORE_DRIVER inválido %q", c.Store.Driver)
	}
	switch c.Store.SettingsDriver {
	case "postgres", "redis", "firestore", "memory":
	default:
		return fmt.Errorf("config: SETTINGS_DRIVER inválido %q", c.Store.SettingsDriver)
	}
	switch c.Auth.Provider {
	case "jwt", "firebase":
	default:
		return fmt.Errorf("config: AUTH_PROVIDER inválido %q", c.Auth.Provider)
	}
	if c.Inventory.StockCritical > c.Inventory.StockLow || c.Inventory.StockLow > c.Inventory.StockMedium {
		return fmt.Errorf("config: umbrales de stock deben ser crecientes (%d, %d, %d)",
			c.Inventory.StockCritical, c.Inventory.StockLow, c.Inventory.StockMedium)
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}
