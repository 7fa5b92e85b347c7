package bpb

import (
	"errors"
	"fmt"

	"github.com/bgrewell/fatread/pkg/consts"
)

// Validation is the verdict on a decoded BPB. A record with problems is still complete and can be reported.
type Validation struct {
	Problems []error
}

// Valid reports whether every check passed.
func (v *Validation) Valid() bool {
	return len(v.Problems) == 0
}

// Err returns the problems joined into one error, or nil when the record is valid.
func (v *Validation) Err() error {
	return errors.Join(v.Problems...)
}

// Validate checks the relationships between fields that the byte layout alone cannot enforce.
func (b *BPB) Validate() *Validation {
	v := &Validation{}

	if b.BytesPerSector != consts.FAT_SECTOR_SIZE {
		v.Problems = append(v.Problems, fmt.Errorf("%w: got %d", ErrBadSectorSize, b.BytesPerSector))
	}

	// The two size fields are alternative encodings of the same value, so exactly one must be in use.
	switch {
	case b.TotalSectors16 == 0 && b.TotalSectors32 == 0:
		v.Problems = append(v.Problems, ErrNoTotalSectors)
	case b.TotalSectors16 != 0 && b.TotalSectors32 != 0:
		v.Problems = append(v.Problems, fmt.Errorf("%w: %d and %d", ErrBothTotalSectors, b.TotalSectors16, b.TotalSectors32))
	}

	return v
}
