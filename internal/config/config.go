package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	LookupRate        float64
	Currency          string
	InvoiceDir        string
	InvoiceIssuer     string
	AdminPasswordHash string
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress      = ":8000"
	defaultLookupRate      = 0.15
	defaultCurrency        = "USD"
	defaultInvoiceDir      = "invoices"
	defaultInvoiceIssuer   = "Wasul"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
// A .env file in the working directory, when present, seeds the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		Currency:          getString(lookup, "CURRENCY", defaultCurrency),
		InvoiceDir:        getString(lookup, "INVOICE_DIR", defaultInvoiceDir),
		InvoiceIssuer:     getString(lookup, "INVOICE_ISSUER", defaultInvoiceIssuer),
		AdminPasswordHash: getString(lookup, "ADMIN_PASSWORD_HASH", ""),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("wasul", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()
	lookupRateStr := getString(lookup, "LOOKUP_RATE", strconv.FormatFloat(defaultLookupRate, 'f', -1, 64))

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&lookupRateStr, "rate", lookupRateStr, "Price charged per address lookup")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "Invoice currency code")
	fs.StringVar(&cfg.InvoiceDir, "invoice-dir", cfg.InvoiceDir, "Directory for generated invoice PDFs")
	fs.StringVar(&cfg.InvoiceIssuer, "invoice-issuer", cfg.InvoiceIssuer, "Issuer name printed on invoices")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.LookupRate, err = strconv.ParseFloat(strings.TrimSpace(lookupRateStr), 64); err != nil {
		return nil, fmt.Errorf("invalid lookup rate: %w", err)
	}

	if hashFile, ok := lookup("ADMIN_PASSWORD_HASH_FILE"); ok && hashFile != "" {
		content, err := os.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("read admin password hash file: %w", err)
		}
		cfg.AdminPasswordHash = strings.TrimSpace(string(content))
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if math.IsNaN(cfg.LookupRate) || math.IsInf(cfg.LookupRate, 0) {
		return nil, fmt.Errorf("lookup rate must be a finite number")
	}
	if cfg.LookupRate < 0 {
		return nil, fmt.Errorf("lookup rate must not be negative")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.InvoiceDir == "" {
		cfg.InvoiceDir = defaultInvoiceDir
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
