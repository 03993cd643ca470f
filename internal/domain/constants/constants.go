// Package constants holds configuration values shared across layers.
package constants

// Storage drivers backing the key/value store.
const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Voucher QR payload type.
const VoucherTypeRedemption = "redemption"
