package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backends de persistencia soportados.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Storage   StorageConfig
	DB        DBConfig
	Inventory InventoryConfig
	Export    ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Locale   string // BCP 47, para formatear montos (pt-BR, es-CO, ...)
	Currency string // ISO 4217
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerFile string // vacío o inexistente = sin /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig dónde se guardan los documentos "products" y "movements".
type StorageConfig struct {
	Backend     string
	Dir         string // backend file
	KeyPrefix   string // backend redis
	SaveTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MongoURI        string
	MongoDatabase   string
	MongoCollection string
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

// InventoryConfig parámetros del dashboard.
type InventoryConfig struct {
	RecentMovements int
	SeriesDays      int
}

// ExportConfig exportación CSV.
type ExportConfig struct {
	CSVCharset string // utf-8, windows-1252, iso-8859-1
	Filename   string // sin extensión
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-tracker"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Locale:   getString(v, "APP_LOCALE", "pt-BR"),
			Currency: getString(v, "APP_CURRENCY", "BRL"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "127.0.0.1"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Storage: StorageConfig{
			Backend:         strings.ToLower(getString(v, "STORAGE_BACKEND", BackendFile)),
			Dir:             getString(v, "STORAGE_DIR", "./data"),
			KeyPrefix:       getString(v, "STORAGE_KEY_PREFIX", "inventario:"),
			SaveTimeout:     time.Duration(getInt(v, "STORAGE_SAVE_TIMEOUT_SECONDS", 5)) * time.Second,
			RedisAddr:       getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword:   getString(v, "REDIS_PASSWORD", ""),
			RedisDB:         getInt(v, "REDIS_DB", 0),
			MongoURI:        getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			MongoDatabase:   getString(v, "MONGO_DATABASE", "inventario"),
			MongoCollection: getString(v, "MONGO_COLLECTION", "state"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Inventory: InventoryConfig{
			RecentMovements: getInt(v, "DASHBOARD_RECENT_MOVEMENTS", 5),
			SeriesDays:      getInt(v, "DASHBOARD_SERIES_DAYS", 7),
		},
		Export: ExportConfig{
			CSVCharset: strings.ToLower(getString(v, "EXPORT_CSV_CHARSET", "utf-8")),
			Filename:   getString(v, "EXPORT_FILENAME", "produtos"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendPostgres, BackendMongo:
	default:
		return fmt.Errorf("config: STORAGE_BACKEND desconocido %q", c.Storage.Backend)
	}
	switch c.Export.CSVCharset {
	case "utf-8", "windows-1252", "iso-8859-1":
	default:
		return fmt.Errorf("config: EXPORT_CSV_CHARSET desconocido %q", c.Export.CSVCharset)
	}
	if c.Storage.SaveTimeout <= 0 {
		return fmt.Errorf("config: STORAGE_SAVE_TIMEOUT_SECONDS debe ser > 0")
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
