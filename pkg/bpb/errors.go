package bpb

import (
	"errors"
	"fmt"
)

var (
	ErrBadSectorSize    = errors.New("bytes per sector is not 512")
	ErrNoTotalSectors   = errors.New("both TotalSectors16 and TotalSectors32 are zero")
	ErrBothTotalSectors = errors.New("both TotalSectors16 and TotalSectors32 are set")
)

// ReadError reports that the source could not be positioned or could not supply a field's full width. It is
// distinct from a validation problem: no record is produced when a ReadError is returned.
type ReadError struct {
	// Field is the name of the field being read, or "seek" when positioning the source failed.
	Field string
	// Offset is the absolute stream position of the field.
	Offset int64
	Want   int
	Got    int
	Err    error
}

func (e *ReadError) Error() string {
	if e.Field == "seek" {
		return fmt.Sprintf("seek to offset %d: %s", e.Offset, e.Err.Error())
	}
	return fmt.Sprintf("read %s at offset %d (got %d of %d bytes): %s", e.Field, e.Offset, e.Got, e.Want, e.Err.Error())
}

func (e *ReadError) Unwrap() error { return e.Err }
