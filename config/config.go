package config

import (
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"yapback/internal/domain/model"
	"yapback/internal/infrastructure/broker"
	"yapback/internal/infrastructure/database"
	"yapback/internal/infrastructure/minio"
	"yapback/internal/infrastructure/probe"
	"yapback/internal/infrastructure/transport"
)

const DefaultBaseURL = "https://yapback.dev"

// Config represents the configs used by the SDK and the dev server.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Client          ClientConfig           `yaml:"client"`
	Limits          model.AttachmentLimits `yaml:"limits"`
	Transport       transport.Config       `yaml:"transport"`
	Probe           probe.Config           `yaml:"video_probe"`
	DevServer       DevServerConfig        `yaml:"dev_server"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOSigner     minio.SignerConfig     `yaml:"minio_signer"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

// ClientConfig is everything the SDK needs to talk to the feedback API. The
// API key comes from the environment, never from the file.
type ClientConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string
}

type DevServerConfig struct {
	Address   string `yaml:"address"`
	PublicURL string `yaml:"public_url"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.Client.APIKey = os.Getenv("YAPBACK_API_KEY")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config and fills defaults.
func (c *Config) basicCheck() error {
	if c.Client.BaseURL == "" {
		c.Client.BaseURL = DefaultBaseURL
	}
	if c.Limits.IsZero() {
		c.Limits = model.DefaultLimits()
	}

	return nil
}
