package option

import (
	"github.com/bgrewell/fatread/pkg/logging"
)

// DecodeOptions controls how a boot sector is located and how progress is reported.
type DecodeOptions struct {
	// BaseOffset is the absolute position of the boot sector within the source. It is zero for a bare volume
	// image and the partition start for a partitioned disk image.
	BaseOffset int64
	Logger     *logging.Logger
}

type DecodeOption func(*DecodeOptions)

// Defaults returns the options used when no DecodeOption is supplied.
func Defaults() *DecodeOptions {
	return &DecodeOptions{
		BaseOffset: 0,
		Logger:     logging.DefaultLogger(),
	}
}

// Apply builds DecodeOptions from the defaults and the given options.
func Apply(opts ...DecodeOption) *DecodeOptions {
	o := Defaults()
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = logging.DefaultLogger()
	}
	return o
}

func WithLogger(logger *logging.Logger) DecodeOption {
	return func(o *DecodeOptions) {
		o.Logger = logger
	}
}

// WithBaseOffset sets where the volume starts within the source. The BPB is read relative to this position.
func WithBaseOffset(offset int64) DecodeOption {
	return func(o *DecodeOptions) {
		o.BaseOffset = offset
	}
}
