package kafka

import "time"

// Config holds Kafka connection parameters for the producer.
type Config struct {
	ClientID string

	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// BatchTimeout bounds how long a writer waits to fill a batch. Zero means 10ms.
	BatchTimeout time.Duration

	// TLS enables TLS for Kafka connections.
	TLS         bool
	SASLEnabled bool
}

func (c Config) batchTimeout() time.Duration {
	if c.BatchTimeout <= 0 {
		return 10 * time.Millisecond
	}
	return c.BatchTimeout
}
