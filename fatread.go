package fatread

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bgrewell/fatread/pkg/bpb"
	"github.com/bgrewell/fatread/pkg/option"
)

// ErrOpen marks failures to open the image itself, before any decode was attempted.
var ErrOpen = errors.New("could not open image")

// Open opens the image at location, decodes the BPB of the volume it holds and closes the file again on every path.
func Open(location string, opts ...option.DecodeOption) (*bpb.BPB, *bpb.Validation, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrOpen, location, err)
	}
	// The file is only read, so once the decode has finished a failing close does not change the result.
	defer func() {
		if cerr := f.Close(); cerr != nil {
			option.Apply(opts...).Logger.Error(cerr, "failed to close image", "path", location)
		}
	}()

	b, v, err := bpb.Decode(f, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", location, err)
	}
	return b, v, nil
}

// Decode decodes the BPB from a source owned by the caller, such as standard input. The source must be seekable.
func Decode(r io.ReadSeeker, opts ...option.DecodeOption) (*bpb.BPB, *bpb.Validation, error) {
	return bpb.Decode(r, opts...)
}
