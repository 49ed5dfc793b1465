package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MemoryDatabaseURI запускает сервис на хранилищах в памяти
const MemoryDatabaseURI = "memory://"

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress   string        // Адрес и порт запуска сервиса
	DatabaseURI  string        // URI подключения к БД или memory://
	JWTSecret    string        // Секретный ключ для JWT
	JWTTokenTTL  time.Duration // Время жизни JWT токена
	LogLevel     string        // Уровень логирования
	RedisAddress string        // Адрес Redis для блокировок и ленты событий, пусто - без Redis
	MirrorPath   string        // Путь к файлу SQLite зеркала, пусто - зеркало в памяти
	Systems      []string      // Системы, в которых могут работать операторы
	CORSOrigins  []string      // Разрешенные источники для браузерных клиентов
	LockTTL      time.Duration // Время жизни распределенной блокировки

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров обновления зеркала
	WorkerScanInterval time.Duration // Интервал обновления снимков систем
}

// fileConfig - необязательный файл конфигурации (yaml, json, toml)
type fileConfig struct {
	RunAddress         string   `mapstructure:"run_address"`
	DatabaseURI        string   `mapstructure:"database_uri"`
	JWTSecret          string   `mapstructure:"jwt_secret"`
	JWTTokenTTL        string   `mapstructure:"jwt_token_ttl"`
	LogLevel           string   `mapstructure:"log_level"`
	RedisAddress       string   `mapstructure:"redis_address"`
	MirrorPath         string   `mapstructure:"mirror_path"`
	Systems            []string `mapstructure:"systems"`
	CORSOrigins        []string `mapstructure:"cors_origins"`
	LockTTL            string   `mapstructure:"lock_ttl"`
	WorkerPoolSize     int      `mapstructure:"worker_pool_size"`
	WorkerScanInterval string   `mapstructure:"worker_scan_interval"`
}

func defaults() *Config {
	return &Config{
		RunAddress:         ":8080",
		DatabaseURI:        MemoryDatabaseURI,
		JWTSecret:          "default-secret-key-change-in-production",
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		Systems:            []string{"ella", "vmce"},
		CORSOrigins:        []string{"*"},
		LockTTL:            10 * time.Second,
		WorkerPoolSize:     2,
		WorkerScanInterval: time.Minute,
	}
}

// Load загружает конфигурацию из файла, флагов и переменных окружения
func Load() (*Config, error) {
	return Parse(os.Args[1:], os.LookupEnv)
}

// Parse собирает конфигурацию.
// Приоритет: env переменные > флаги > файл конфигурации > дефолтные значения
func Parse(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("purchasetracker", flag.ContinueOnError)
	configFile := fs.String("c", "", "path to config file")
	runAddress := fs.String("a", cfg.RunAddress, "address and port to run server")
	databaseURI := fs.String("d", cfg.DatabaseURI, "database URI (memory:// for in-memory stores)")
	redisAddress := fs.String("redis", "", "redis address")
	mirrorPath := fs.String("mirror", "", "path to sqlite mirror file")
	systems := fs.String("systems", "", "comma separated list of systems")
	lockTTL := fs.Duration("lock-ttl", cfg.LockTTL, "redis lock ttl")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Файл конфигурации читается первым, чтобы флаги и env могли его переопределить
	path := *configFile
	if envPath, ok := lookupEnv("CONFIG_FILE"); ok {
		path = envPath
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	// Флаги учитываются только если заданы явно
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.RunAddress = *runAddress
		case "d":
			cfg.DatabaseURI = *databaseURI
		case "redis":
			cfg.RedisAddress = *redisAddress
		case "mirror":
			cfg.MirrorPath = *mirrorPath
		case "systems":
			cfg.Systems = splitList(*systems)
		case "lock-ttl":
			cfg.LockTTL = *lockTTL
		}
	})

	// Переменные окружения имеют приоритет над флагами
	if v, ok := lookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}
	if v, ok := lookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = v
	}
	// JWT секрет не принимается из флагов
	if v, ok := lookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookupEnv("REDIS_ADDRESS"); ok {
		cfg.RedisAddress = v
	}
	if v, ok := lookupEnv("MIRROR_PATH"); ok {
		cfg.MirrorPath = v
	}
	if v, ok := lookupEnv("SYSTEMS"); ok {
		cfg.Systems = splitList(v)
	}
	if v, ok := lookupEnv("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitList(v)
	}
	if v, ok := lookupEnv("LOCK_TTL"); ok {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > 0 {
			cfg.LockTTL = ttl
		}
	}
	if v, ok := lookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}
	if v, ok := lookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(v); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesMemoryStore сообщает, что основное хранилище находится в памяти
func (c *Config) UsesMemoryStore() bool {
	return c.DatabaseURI == "" || c.DatabaseURI == MemoryDatabaseURI
}

func (c *Config) validate() error {
	if len(c.Systems) == 0 {
		return errors.New("at least one system is required (use -systems flag or SYSTEMS env)")
	}
	if c.LockTTL <= 0 {
		return errors.New("lock ttl must be positive (use -lock-ttl flag or LOCK_TTL env)")
	}
	if c.RunAddress == "" {
		return errors.New("run address is required (use -a flag or RUN_ADDRESS env)")
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	setString(&cfg.RunAddress, fc.RunAddress)
	setString(&cfg.DatabaseURI, fc.DatabaseURI)
	setString(&cfg.JWTSecret, fc.JWTSecret)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.RedisAddress, fc.RedisAddress)
	setString(&cfg.MirrorPath, fc.MirrorPath)
	if len(fc.Systems) > 0 {
		cfg.Systems = fc.Systems
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.WorkerPoolSize > 0 {
		cfg.WorkerPoolSize = fc.WorkerPoolSize
	}
	if err := setDuration(&cfg.JWTTokenTTL, fc.JWTTokenTTL); err != nil {
		return fmt.Errorf("invalid jwt_token_ttl: %w", err)
	}
	if err := setDuration(&cfg.LockTTL, fc.LockTTL); err != nil {
		return fmt.Errorf("invalid lock_ttl: %w", err)
	}
	if err := setDuration(&cfg.WorkerScanInterval, fc.WorkerScanInterval); err != nil {
		return fmt.Errorf("invalid worker_scan_interval: %w", err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	if d > 0 {
		*dst = d
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
