package stylemeta

// Option configures behavior when decoding style files.
//
// Options use the functional options pattern:
//
//	file, err := stylemeta.Decode(data,
//	    stylemeta.WithStrictDecoding(),
//	)
type Option func(*decodeOptions)

// decodeOptions holds configuration for a decode call.
type decodeOptions struct {
	strictDecoding bool // Fail on any structural violation
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		strictDecoding: false,
		ignoreWarnings: false,
	}
}

// WithStrictDecoding turns every structural violation into a fatal error.
//
// By default, decoding is lenient: an unexpected chunk tag, an unrecognized
// enumeration code or a short field drops the offending item or substitutes
// a documented default, and the issue is recorded in File.Warnings.
//
// With strict decoding, the same violations abort decoding with an error
// naming the failing section. Truncated chunks abort under both policies.
//
// The policy is fixed for the duration of one decode call and threaded
// through every sub-decoder; two calls with different policies may run
// concurrently over the same buffer.
func WithStrictDecoding() Option {
	return func(o *decodeOptions) {
		o.strictDecoding = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, issues absorbed under lenient decoding are collected in
// File.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *decodeOptions) {
		o.ignoreWarnings = true
	}
}
