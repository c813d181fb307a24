package config

import "strings"

// BlobStoreConfig configures S3-compatible storage for uploaded documents.
type BlobStoreConfig struct {
	Enabled   bool   `env:"ENABLED"    envDefault:"false"`
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"     envDefault:"us-east-1"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// Endpoint targets S3-compatible services such as MinIO.
	Endpoint  string `env:"ENDPOINT"`
	PathStyle bool   `env:"PATH_STYLE" envDefault:"false"`

	Prefix    string `env:"PREFIX"     envDefault:"library"`
	PublicURL string `env:"PUBLIC_URL"`
}

// Sanitize disables the blob store when it cannot be used.
func (c *BlobStoreConfig) Sanitize() {
	c.Bucket = strings.TrimSpace(c.Bucket)
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.Bucket == "" {
		c.Enabled = false
	}
}

// IsEnabled returns true when uploads can go to the blob store after sanitisation.
func (c *BlobStoreConfig) IsEnabled() bool {
	return c.Enabled && c.Bucket != ""
}
