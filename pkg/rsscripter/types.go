package rsscripter

import (
	"errors"
	"fmt"
	"time"
)

// GenerateConfig contains all parameters needed for a generation run.
type GenerateConfig struct {
	// ConnectionString is the Redshift connection string (URI or key=value
	// format). The database it names is the one that gets scripted.
	ConnectionString string

	// OutputDir is the root of the generated script tree.
	OutputDir string

	// MaxExportRows is the row-count ceiling for bulk data export. Tables
	// estimated above it are skipped with a warning.
	MaxExportRows int64

	// Timeout is the global timeout for the entire run.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid
// values. It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("ConnectionString is required: %w", ErrInvalidConfig))
	}

	if c.OutputDir == "" {
		errs = append(errs, fmt.Errorf("OutputDir is required: %w", ErrInvalidConfig))
	}

	if c.MaxExportRows < 0 {
		errs = append(errs, fmt.Errorf("MaxExportRows cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string
}
