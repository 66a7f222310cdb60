package config

import (
	"claimgate-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "claimgate"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/New_York"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			APIKey:                     utils.GetEnvString("APP_API_KEY", ""),
			APIKeyRateLimit:            utils.GetEnvInt("APP_API_KEY_RATE_LIMIT", 100),
		},
		Gateway: Gateway{
			Bucket:                   utils.GetEnvString("GATEWAY_BUCKET", "payer-inbound"),
			InboundBucket:            utils.GetEnvString("GATEWAY_INBOUND_BUCKET", "payer-outbound"),
			MaxTransmitRetries:       utils.GetEnvInt("GATEWAY_MAX_TRANSMIT_RETRIES", 3),
			TransmitRatePerSecond:    utils.GetEnvInt("GATEWAY_TRANSMIT_RATE_PER_SECOND", 5),
			TransmitTimeoutInSeconds: utils.GetEnvInt("GATEWAY_TRANSMIT_TIMEOUT_IN_SECONDS", 15),
		},
		Remittance: Remittance{
			IntakeQueue:             utils.GetEnvString("REMITTANCE_INTAKE_QUEUE", "remittance_intake_queue"),
			DeadLetterQueue:         utils.GetEnvString("REMITTANCE_DEAD_LETTER_QUEUE", "remittance_intake_dlq"),
			MaxQueuePerTick:         utils.GetEnvInt("REMITTANCE_MAX_QUEUE_PER_TICK", 10),
			WorkerIntervalInSeconds: utils.GetEnvInt("REMITTANCE_WORKER_INTERVAL_IN_SECONDS", 30),
			ReportCacheTTLInMinutes: utils.GetEnvInt("REMITTANCE_REPORT_CACHE_TTL_IN_MINUTES", 60),
		},
	}
}
