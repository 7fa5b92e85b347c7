package bpb

import (
	"io"

	"github.com/bgrewell/fatread/pkg/consts"
	"github.com/bgrewell/fatread/pkg/option"
)

// Decode seeks r to the BPB of the volume starting at the configured base offset (0 by default), reads every field
// in a single pass and validates the result.
//
// A read or seek failure returns a *ReadError and no record. Otherwise the record is returned together with its
// Validation, even when the validation failed. Decode keeps no state between calls; the only side effect is the
// position of r.
func Decode(r io.ReadSeeker, opts ...option.DecodeOption) (*BPB, *Validation, error) {
	o := option.Apply(opts...)
	log := o.Logger.WithName("bpb")

	start := o.BaseOffset + consts.BPB_START_OFFSET
	log.Debug("seeking to bpb", "offset", start)
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		rerr := &ReadError{Field: "seek", Offset: start, Err: err}
		log.Debug("failed to position source", "error", rerr.Error())
		return nil, nil, rerr
	}

	b := &BPB{}
	if err := b.decode(newFieldReader(r, start, log)); err != nil {
		log.Debug("failed to read bpb", "error", err.Error())
		return nil, nil, err
	}

	v := b.Validate()
	log.Debug("decoded bpb",
		"bytes_per_sector", b.BytesPerSector,
		"total_sectors", b.TotalSectors(),
		"label", b.VolumeLabel.String(),
		"serial", b.VolumeSerialString(),
		"extended_fields", b.HasExtendedFields(),
		"valid", v.Valid())
	for _, p := range v.Problems {
		log.Debug("validation failed", "problem", p.Error())
	}

	return b, v, nil
}
