package settings

type Config struct {
	Logger  Logger  `mapstructure:"logger"`
	Queue   Queue   `mapstructure:"queue"`
	Batcher Batcher `mapstructure:"batcher"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// Queue is the configuration for a bounded queue.
// Capacity must be positive; the queue constructor panics otherwise.
type Queue struct {
	Capacity int `mapstructure:"capacity" validate:"gt=0"`
}

// Batcher is the configuration for the staging batcher.
// Zero means the batcher default.
type Batcher struct {
	BatchSize int `mapstructure:"batch_size" validate:"gte=0"`
}
