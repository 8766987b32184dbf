package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type SignerConfig struct {
	Bucket        string `yaml:"bucket"`
	ExpirySeconds int64  `yaml:"expiry_in_seconds"`
}
