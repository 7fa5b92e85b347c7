package bpb

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/bgrewell/fatread/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldReader_StickyError(t *testing.T) {
	fr := newFieldReader(bytes.NewReader([]byte{0x00, 0x02, 0x07}), 11, logging.DefaultLogger())

	assert.EqualValues(t, 512, fr.uint16("a"))
	assert.EqualValues(t, 7, fr.uint8("b"))
	assert.Zero(t, fr.uint32("c"))
	assert.Zero(t, fr.uint16("d"))

	var rerr *ReadError
	require.True(t, errors.As(fr.err, &rerr))
	assert.Equal(t, "c", rerr.Field, "the first failing field is kept")
	assert.EqualValues(t, 14, rerr.Offset)
	assert.ErrorIs(t, fr.err, io.EOF)
}

func TestBPB_MarshalUnmarshal(t *testing.T) {
	b := BPB{
		BytesPerSector:        512,
		SectorsPerCluster:     1,
		ReservedSectors:       1,
		NumberOfFATs:          2,
		RootDirEntries:        224,
		TotalSectors16:        2880,
		MediaDescriptor:       0xF0,
		SectorsPerFAT16:       9,
		SectorsPerTrack:       18,
		NumHeads:              2,
		ExtendedBootSignature: 0x29,
		VolumeSerial:          0xCAFEF00D,
	}
	copy(b.VolumeLabel[:], "BOOTDISK   ")
	copy(b.FileSystemType[:], "FAT12   ")

	data, err := b.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 51)
	assert.Equal(t, []byte{0x00, 0x02}, data[0:2])
	assert.Equal(t, []byte{0x40, 0x0B}, data[8:10])
	assert.Equal(t, "BOOTDISK   FAT12   ", string(data[32:]))

	var b2 BPB
	require.NoError(t, b2.UnmarshalBinary(data))
	assert.Equal(t, b, b2)
}

func TestBPB_UnmarshalShortData(t *testing.T) {
	b := BPB{BytesPerSector: 4096}
	err := b.UnmarshalBinary(make([]byte, 50))

	var rerr *ReadError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "FileSystemType", rerr.Field)
	assert.Equal(t, 7, rerr.Got)
	assert.EqualValues(t, 4096, b.BytesPerSector, "receiver must be untouched on failure")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		bps      uint16
		ts16     uint16
		ts32     uint32
		problems []error
	}{
		{"32-bit size", 512, 0, 20480, nil},
		{"16-bit size", 512, 2880, 0, nil},
		{"bad sector size", 1024, 2880, 0, []error{ErrBadSectorSize}},
		{"4096 sector size", 4096, 0, 20480, []error{ErrBadSectorSize}},
		{"no size", 512, 0, 0, []error{ErrNoTotalSectors}},
		{"both sizes", 512, 2880, 20480, []error{ErrBothTotalSectors}},
		{"everything wrong", 0, 0, 0, []error{ErrBadSectorSize, ErrNoTotalSectors}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BPB{BytesPerSector: tt.bps, TotalSectors16: tt.ts16, TotalSectors32: tt.ts32}
			v := b.Validate()
			assert.Equal(t, len(tt.problems) == 0, v.Valid())
			require.Len(t, v.Problems, len(tt.problems))
			for i, want := range tt.problems {
				assert.ErrorIs(t, v.Problems[i], want)
			}
			if v.Valid() {
				assert.NoError(t, v.Err())
			}
		})
	}
}

func TestValidate_MessageCarriesValues(t *testing.T) {
	b := BPB{BytesPerSector: 1024, TotalSectors16: 10, TotalSectors32: 20}
	err := b.Validate().Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 1024")
	assert.Contains(t, err.Error(), "10 and 20")
}

func TestTextFields(t *testing.T) {
	var l Label
	copy(l[:], "NOLABEL    ")
	assert.Equal(t, "NOLABEL", l.String())
	assert.Equal(t, "NOLABEL    ", l.Raw())

	var f FSType
	copy(f[:], "FAT16")
	assert.Equal(t, "FAT16", f.String())
	assert.Len(t, f.Raw(), 8)
}

func TestBPB_JSON(t *testing.T) {
	b := BPB{BytesPerSector: 512, TotalSectors16: 2880, MediaDescriptor: 0xF0}
	copy(b.VolumeLabel[:], "NO NAME    ")
	copy(b.FileSystemType[:], "FAT12   ")

	data, err := json.Marshal(&b)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "NO NAME", m["volume_label"])
	assert.Equal(t, "FAT12", m["file_system_type"])
	assert.EqualValues(t, 512, m["bytes_per_sector"])
	assert.EqualValues(t, 240, m["media_descriptor"])
}

func TestAccessors(t *testing.T) {
	b := BPB{TotalSectors32: 20480, VolumeSerial: 0x1234ABCD, ExtendedBootSignature: 0x28}
	assert.EqualValues(t, 20480, b.TotalSectors())
	assert.Equal(t, "1234-ABCD", b.VolumeSerialString())
	assert.True(t, b.HasExtendedFields())

	b.ExtendedBootSignature = 0
	assert.False(t, b.HasExtendedFields())
}
