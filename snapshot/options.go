package snapshot

// StoreOptions configures a DirStore.
type StoreOptions struct {
	// FileExt is appended to the grid id to form snapshot filenames.
	FileExt string
}

// Option is a generic option type. Options type assert to their target
// options record and are ignored if the assertion fails.
type Option func(any)

func WithFileExt(ext string) Option {
	return func(opts any) {
		if o, ok := opts.(*StoreOptions); ok {
			o.FileExt = ext
		}
	}
}
