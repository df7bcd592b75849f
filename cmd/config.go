package cmd

import "time"

// Config carries all runtime settings, loaded from the environment or a
// .env file at startup.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Promotion job settings. The interval controls how often the job
	// fires; the lock windows bound the shared lease across instances.
	PromoteJobInterval    time.Duration
	PromoteLockAtMostFor  time.Duration
	PromoteLockAtLeastFor time.Duration
}
