package module

import (
	"scrubjay/internal/platform/config"
)

// Options configures the tweets module
type Options struct {
	HardLimit int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	tf := cfg.Prefix("CORE_TWEETS_")
	return Options{
		HardLimit: tf.MayInt("HARD_LIMIT", 5000),
	}
}
