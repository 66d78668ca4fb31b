package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		Name              string   `json:"name"`
		Environment       string   `json:"environment"`
		Version           string   `json:"version"`
		LogLevel          string   `json:"log_level"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		ActivationKey     string   `json:"activation_key"`
		BcryptCost        int      `json:"bcrypt_cost"`
		RequireActivation bool     `json:"require_activation"`
		ClientHost        string   `json:"client_host"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Media struct {
			Endpoint      string `json:"endpoint"`
			Region        string `json:"region"`
			Bucket        string `json:"bucket"`
			AccessKey     string `json:"access_key"`
			SecretKey     string `json:"secret_key"`
			PublicBaseURL string `json:"public_base_url"`
			MaxUploadSize int64  `json:"max_upload_size"`
		} `json:"media,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			URL     string   `json:"url"`
			APIKey  string   `json:"api_key"`
			From    string   `json:"from"`
			Timeout Duration `json:"timeout"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:              jsonCfg.App.Name,
			Environment:       jsonCfg.App.Environment,
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			ActivationKey:     jsonCfg.App.ActivationKey,
			BcryptCost:        jsonCfg.App.BcryptCost,
			RequireActivation: jsonCfg.App.RequireActivation,
			ClientHost:        jsonCfg.App.ClientHost,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Media: Media{
				Endpoint:      jsonCfg.Storage.Media.Endpoint,
				Region:        jsonCfg.Storage.Media.Region,
				Bucket:        jsonCfg.Storage.Media.Bucket,
				AccessKey:     jsonCfg.Storage.Media.AccessKey,
				SecretKey:     jsonCfg.Storage.Media.SecretKey,
				PublicBaseURL: jsonCfg.Storage.Media.PublicBaseURL,
				MaxUploadSize: jsonCfg.Storage.Media.MaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Mail: Mail{
				URL:     jsonCfg.Adapter.Mail.URL,
				APIKey:  jsonCfg.Adapter.Mail.APIKey,
				From:    jsonCfg.Adapter.Mail.From,
				Timeout: time.Duration(jsonCfg.Adapter.Mail.Timeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
