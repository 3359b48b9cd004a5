package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StoragePostgres StorageDriver = "postgres"
)

const (
	defaultIdempotencyTTL       = 60 * time.Second
	defaultPublishTimeout       = 500 * time.Millisecond
	defaultStreamHeartbeat      = 15 * time.Second
	defaultReplanTimeout        = 10 * time.Second
	defaultReplanConcurrency    = 64
	defaultLeaseSweepInterval   = 30 * time.Second
	defaultDeviationThresholdKm = 0.5
	defaultFallbackSpeedKmh     = 30.0
	defaultFallbackDwell        = 5 * time.Minute
	defaultOptimizerBaseURL     = "https://api.openrouteservice.org"
	defaultOptimizerTimeout     = 3 * time.Second
	defaultOptimizerProfile     = "driving-car"
	defaultAssignmentTopic      = "order.assignment.changed"
	defaultRouteReplannedTopic  = "route.replanned"
)

type (
	Tasks struct {
		LeaseSweepInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity

		// лимит на один заказ (устройство водителя), 0 - выключен
		ClientRateLimitQPS   float64
		ClientRateLimitBurst int

		PprofEnabled bool
		PprofPort    string
	}

	Storage struct {
		Driver  StorageDriver
		Migrate bool // goose up при старте
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// Redis опционален: пустой Addr - in-memory guard и bus.
	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		ConsumerGroup   string
		Topics          KafkaTopics
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	KafkaTopics struct {
		AssignmentChanged string
		RouteReplanned    string
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		AssignmentChanged AssignmentChanged
	}

	AssignmentChanged struct {
		ProcessTimeout time.Duration
	}

	Tracking struct {
		IdempotencyTTL  time.Duration
		PublishTimeout  time.Duration
		StreamHeartbeat time.Duration
		ReplanTimeout   time.Duration

		// сколько пересчетов по пингам выполняется одновременно
		ReplanConcurrency int
	}

	Route struct {
		DeviationThresholdKm float64
		FallbackSpeedKmh     float64
		FallbackDwell        time.Duration
	}

	Optimizer struct {
		BaseURL string
		APIKey  string // пустой ключ - всегда fallback
		Timeout time.Duration
		Profile string
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Storage   Storage
		Database  Database
		Redis     Redis
		Kafka     Kafka
		Tracking  Tracking
		Route     Route
		Optimizer Optimizer
	}
)

// BrokerList разбирает KAFKA_BROKERS. Пустая строка - kafka не настроена.
func (k Kafka) BrokerList() []string {
	if strings.TrimSpace(k.Brokers) == "" {
		return nil
	}

	brokers := strings.Split(k.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Load читает конфиг HTTP сервиса.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := ValidateService(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker читает конфиг kafka воркера.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := ValidateWorker(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	leaseSweepInterval, err := osGetEnvDurationDefault("BACKGROUND_LEASE_SWEEP_INTERVAL", defaultLeaseSweepInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	clientQPS, err := osGetFloatDefault("MIDDLEWARE_CLIENT_RATE_LIMIT_QPS", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	clientBurst, err := osGetInt("MIDDLEWARE_CLIENT_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrate, err := osGetBool("POSTGRES_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	assignmentTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ASSIGNMENT_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	idempotencyTTL, err := osGetEnvDurationDefault("TRACKING_IDEMPOTENCY_TTL", defaultIdempotencyTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	publishTimeout, err := osGetEnvDurationDefault("TRACKING_PUBLISH_TIMEOUT", defaultPublishTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	heartbeat, err := osGetEnvDurationDefault("TRACKING_STREAM_HEARTBEAT", defaultStreamHeartbeat)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	replanTimeout, err := osGetEnvDurationDefault("TRACKING_REPLAN_TIMEOUT", defaultReplanTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	replanConcurrency, err := osGetIntDefault("TRACKING_REPLAN_CONCURRENCY", defaultReplanConcurrency)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deviationThreshold, err := osGetFloatDefault("ROUTE_DEVIATION_THRESHOLD_KM", defaultDeviationThresholdKm)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fallbackSpeed, err := osGetFloatDefault("ROUTE_FALLBACK_SPEED_KMH", defaultFallbackSpeedKmh)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fallbackDwell, err := osGetEnvDurationDefault("ROUTE_FALLBACK_DWELL", defaultFallbackDwell)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	optimizerTimeout, err := osGetEnvDurationDefault("OPTIMIZER_TIMEOUT", defaultOptimizerTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			LeaseSweepInterval: leaseSweepInterval,
		},
		Server: HTTPServer{
			Port:                 os.Getenv("PORT"),
			RequestTimeout:       requestTimeout,
			RateLimiterQPS:       rateLimiterQPS,
			RateLimiterBurst:     rateLimiterBurst,
			ClientRateLimitQPS:   clientQPS,
			ClientRateLimitBurst: clientBurst,
			PprofEnabled:         pprofEnabled,
			PprofPort:            os.Getenv("PPROF_PORT"),
		},
		Storage: Storage{
			Driver:  StorageDriver(osGetStringDefault("STORAGE_DRIVER", string(StorageMemory))),
			Migrate: migrate,
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Topics: KafkaTopics{
				AssignmentChanged: osGetStringDefault("KAFKA_ASSIGNMENT_TOPIC", defaultAssignmentTopic),
				RouteReplanned:    osGetStringDefault("KAFKA_ROUTE_REPLANNED_TOPIC", defaultRouteReplannedTopic),
			},
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				AssignmentChanged: AssignmentChanged{
					ProcessTimeout: assignmentTimeout,
				},
			},
		},
		Tracking: Tracking{
			IdempotencyTTL:  idempotencyTTL,
			PublishTimeout:  publishTimeout,
			StreamHeartbeat: heartbeat,
			ReplanTimeout:   replanTimeout,

			ReplanConcurrency: replanConcurrency,
		},
		Route: Route{
			DeviationThresholdKm: deviationThreshold,
			FallbackSpeedKmh:     fallbackSpeed,
			FallbackDwell:        fallbackDwell,
		},
		Optimizer: Optimizer{
			BaseURL: osGetStringDefault("OPTIMIZER_BASE_URL", defaultOptimizerBaseURL),
			APIKey:  os.Getenv("OPTIMIZER_API_KEY"),
			Timeout: optimizerTimeout,
			Profile: osGetStringDefault("OPTIMIZER_PROFILE", defaultOptimizerProfile),
		},
	}, nil
}

// ValidateService проверяет конфиг cmd/service.
func ValidateService(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.ClientRateLimitQPS < 0 {
		return errors.New("MIDDLEWARE_CLIENT_RATE_LIMIT_QPS must not be negative")
	}
	if cfg.Server.ClientRateLimitQPS > 0 && cfg.Server.ClientRateLimitBurst <= 0 {
		return errors.New("MIDDLEWARE_CLIENT_RATE_LIMIT_BURST is required when client rate limit is enabled")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	switch cfg.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if err := validateDatabase(&cfg.Database); err != nil {
			return err
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StoragePostgres, cfg.Storage.Driver)
	}

	if cfg.Tasks.LeaseSweepInterval <= 0 {
		return errors.New("BACKGROUND_LEASE_SWEEP_INTERVAL must be positive")
	}

	if len(cfg.Kafka.BrokerList()) > 0 {
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_BROKERS is set")
		}
		if cfg.Kafka.Topics.RouteReplanned == "" {
			return errors.New("KAFKA_ROUTE_REPLANNED_TOPIC is required when KAFKA_BROKERS is set")
		}
	}

	return validateDomain(cfg)
}

// ValidateWorker проверяет конфиг cmd/worker-order-assignment.
func ValidateWorker(cfg *Config) error {
	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topics.AssignmentChanged == "" {
		return errors.New("KAFKA_ASSIGNMENT_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.AssignmentChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ASSIGNMENT_PROCESS_TIMEOUT is required")
	}

	return validateDomain(cfg)
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateDomain(cfg *Config) error {
	if cfg.Tracking.IdempotencyTTL <= 0 {
		return errors.New("TRACKING_IDEMPOTENCY_TTL must be positive")
	}
	if cfg.Tracking.PublishTimeout <= 0 {
		return errors.New("TRACKING_PUBLISH_TIMEOUT must be positive")
	}
	if cfg.Tracking.StreamHeartbeat <= 0 {
		return errors.New("TRACKING_STREAM_HEARTBEAT must be positive")
	}
	if cfg.Tracking.ReplanTimeout <= 0 {
		return errors.New("TRACKING_REPLAN_TIMEOUT must be positive")
	}
	if cfg.Tracking.ReplanConcurrency <= 0 {
		return errors.New("TRACKING_REPLAN_CONCURRENCY must be positive")
	}

	if cfg.Route.DeviationThresholdKm <= 0 {
		return errors.New("ROUTE_DEVIATION_THRESHOLD_KM must be positive")
	}
	if cfg.Route.FallbackSpeedKmh <= 0 {
		return errors.New("ROUTE_FALLBACK_SPEED_KMH must be positive")
	}
	if cfg.Route.FallbackDwell < 0 {
		return errors.New("ROUTE_FALLBACK_DWELL must not be negative")
	}

	if cfg.Optimizer.BaseURL == "" {
		return errors.New("OPTIMIZER_BASE_URL is required")
	}
	if cfg.Optimizer.Timeout <= 0 {
		return errors.New("OPTIMIZER_TIMEOUT must be positive")
	}
	return nil
}

func osGetStringDefault(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetIntDefault(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloatDefault(s string, def float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	return osGetEnvDurationDefault(s, time.Duration(0))
}

func osGetEnvDurationDefault(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
