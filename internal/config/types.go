package config

import "time"

// storage backends for the persisted draft slot
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Environment    string
	ServiceURL     string
	RequestTimeout time.Duration
	AuthSecret     string
	StateDir       string
	StateBackend   string
}
