package settings

const (
	DefaultLogLevel      = "info"
	DefaultQueueCapacity = 1024
	DefaultBatchSize     = 512
)

// Default returns a Config that passes Validate.
func Default() Config {
	return Config{
		Logger: Logger{
			LogLevel:   DefaultLogLevel,
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Queue:   Queue{Capacity: DefaultQueueCapacity},
		Batcher: Batcher{BatchSize: DefaultBatchSize},
	}
}
