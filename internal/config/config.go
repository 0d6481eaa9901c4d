// Package config defines audit configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Population configures one audited employee population. The original
// workbook splits salaried and hourly employees into separate sheets
// with different compensation columns and tolerances; here each
// population is its own CSV file.
type Population struct {
	// Input is the roster CSV to audit.
	Input string `koanf:"input"`

	// Output receives the annotated roster. Empty writes back over the
	// input file.
	Output string `koanf:"output"`

	// Threshold is the maximum compensation gap considered equitable.
	Threshold float64 `koanf:"threshold"`

	// CompensationColumn names the roster column to rank by.
	CompensationColumn string `koanf:"compensation_column"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr exposes Prometheus metrics while a run is in
	// progress, e.g. ":9090". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// WorkerCount sets the number of cohort evaluation workers.
	WorkerCount int `koanf:"worker_count"`

	// CSVSeparator is the roster field separator, a single rune.
	CSVSeparator string `koanf:"csv_separator"`

	Salaried Population `koanf:"salaried"`
	Hourly   Population `koanf:"hourly"`
}

// New creates a Config with defaults. Thresholds and column names
// follow the stock workbook layout.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		MetricsAddr:  "",
		WorkerCount:  runtime.NumCPU(),
		CSVSeparator: ",",
		Salaried: Population{
			Input:              "salaried.csv",
			Threshold:          2200,
			CompensationColumn: "Total Compensation",
		},
		Hourly: Population{
			Input:              "hourly.csv",
			Threshold:          0.01,
			CompensationColumn: "Calculated Compensation",
		},
	}
}
