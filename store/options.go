package store

// Options holds construction settings for a Store.
type Options struct {
	Locking bool
}

// Option defines a function type for applying store options.
type Option func(*Options)

// WithLocking makes the store safe for concurrent use by guarding it with a sync.RWMutex.
func WithLocking() Option {
	return func(opts *Options) {
		opts.Locking = true
	}
}
