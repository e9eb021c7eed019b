// Package minio provides a MinIO/S3-compatible implementation of the
// core.Storage interface.
//
// Object stores have no real directories. A directory is represented by a
// zero-byte marker object whose key ends in "/", and a key prefix with
// objects below it also reads as a directory. Mkdir and MkdirAll write
// markers; Remove of an empty directory deletes its marker.
package minio

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO storage configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g., "localhost:9000")
	Endpoint string

	// Bucket is the S3 bucket name
	Bucket string

	// AccessKey is the access key ID for authentication
	AccessKey string

	// SecretKey is the secret access key for authentication
	SecretKey string

	// UseSSL enables HTTPS connections
	UseSSL bool

	// Prefix is an optional key prefix under which the whole storage lives.
	// Two storages with different prefixes never see each other's objects.
	Prefix string

	// Client is an optional pre-configured MinIO client.
	// If provided, Endpoint/AccessKey/SecretKey are ignored.
	Client *minio.Client
}

// validate checks that either Client or a full set of connection details
// is present. Bucket is always required.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.Client != nil {
		return nil
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return fmt.Errorf("access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required when client is not provided")
	}
	return nil
}
