package cmd

import "time"

// Store driver selection values for Config.StoreDriver.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	HTTPPort           string
	OrderBasePath      string
	HubBasePath        string
	StoreDriver        string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DeliveryTimeout    time.Duration
	StoreStatsSchedule string
}
