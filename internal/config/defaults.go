package config

import "time"

const (
	defaultName           = "go-fundraiser"
	defaultEnvironment    = EnvProduction
	defaultLogLevel       = "info"
	defaultTokenIssuer    = "go-fundraiser"
	defaultTokenDuration  = 24 * time.Hour
	defaultBcryptCost     = 10
	defaultRequestTimeout = 30 * time.Second
	defaultMediaRegion    = "us-east-1"
	defaultMediaBucket    = "go-fundraiser"
	defaultMaxUploadSize  = 5 << 20
	defaultMailTimeout    = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:          defaultName,
			Environment:   defaultEnvironment,
			LogLevel:      defaultLogLevel,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
		},
		Storage: Storage{
			Media: Media{
				Region:        defaultMediaRegion,
				Bucket:        defaultMediaBucket,
				MaxUploadSize: defaultMaxUploadSize,
			},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			Mail: Mail{Timeout: defaultMailTimeout},
		},
	}
}
