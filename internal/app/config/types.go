package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App        App
	Gateway    Gateway
	Remittance Remittance
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	APIKey                     string
	APIKeyRateLimit            int
}

// Gateway configures outbound claim file transmission.
type Gateway struct {
	Bucket                   string
	InboundBucket            string
	MaxTransmitRetries       int
	TransmitRatePerSecond    int
	TransmitTimeoutInSeconds int
}

// Remittance configures the intake queue worker and report cache.
type Remittance struct {
	IntakeQueue             string
	DeadLetterQueue         string
	MaxQueuePerTick         int
	WorkerIntervalInSeconds int
	ReportCacheTTLInMinutes int
}
