package config

// Store backends
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)
