package core

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultConcurrency bounds the number of parallel image fetches per post.
	DefaultConcurrency = 12
	// DefaultFetchTimeout bounds each individual image fetch.
	DefaultFetchTimeout = 10 * time.Second
)

// Config is the read-only run configuration shared by all posts.
type Config struct {
	Concurrency  int
	FetchTimeout time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency:  DefaultConcurrency,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Concurrency, validation.Required, validation.Min(1)),
		validation.Field(&c.FetchTimeout, validation.Required, validation.Min(time.Second)),
	)
}
