package bpb

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bgrewell/fatread/pkg/consts"
	"github.com/bgrewell/fatread/pkg/encoding"
	"github.com/bgrewell/fatread/pkg/logging"
)

// Label is the 11 byte volume label. It is space padded on disk and carries no terminator.
type Label [consts.FAT_VOLUME_LABEL_SIZE]byte

// String returns the label with its padding removed.
func (l Label) String() string { return encoding.UnmarshalString(l[:]) }

// Raw returns all 11 bytes decoded from the OEM code page, padding included.
func (l Label) Raw() string { return encoding.DecodeOEMString(l[:]) }

func (l Label) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// FSType is the 8 byte informational filesystem type string, e.g. "FAT12   ".
type FSType [consts.FAT_FS_TYPE_SIZE]byte

func (f FSType) String() string { return encoding.UnmarshalString(f[:]) }

func (f FSType) Raw() string { return encoding.DecodeOEMString(f[:]) }

func (f FSType) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// BPB is the BIOS Parameter Block of a FAT12/FAT16 boot sector, covering the DOS 2.0 fields and the DOS 3.31 and
// DOS 3.4 extensions. Fields are listed in on-disk order.
type BPB struct {
	// --- DOS 2.0 ---
	BytesPerSector    uint16 `json:"bytes_per_sector"`
	SectorsPerCluster uint8  `json:"sectors_per_cluster"`
	ReservedSectors   uint16 `json:"reserved_sectors"`
	NumberOfFATs      uint8  `json:"number_of_fats"`
	// Number of 32 byte entries in the fixed size root directory.
	RootDirEntries uint16 `json:"root_dir_entries"`
	// Volume size in sectors, or 0 when it does not fit and TotalSectors32 is used instead.
	TotalSectors16  uint16 `json:"total_sectors_16"`
	MediaDescriptor uint8  `json:"media_descriptor"`
	SectorsPerFAT16 uint16 `json:"sectors_per_fat_16"`
	// --- DOS 3.31 ---
	SectorsPerTrack uint16 `json:"sectors_per_track"`
	NumHeads        uint16 `json:"num_heads"`
	HiddenSectors   uint32 `json:"hidden_sectors"`
	TotalSectors32  uint32 `json:"total_sectors_32"`
	// --- DOS 3.4 ---
	DriveNumber           uint8  `json:"drive_number"`
	Reserved              uint8  `json:"reserved"`
	ExtendedBootSignature uint8  `json:"extended_boot_signature"`
	VolumeSerial          uint32 `json:"volume_serial"`
	VolumeLabel           Label  `json:"volume_label"`
	FileSystemType        FSType `json:"file_system_type"`
}

// TotalSectors returns the volume size from whichever of the two size fields is in use. When both are set, the
// 16-bit value wins; Validate reports that case.
func (b *BPB) TotalSectors() uint32 {
	if b.TotalSectors16 != 0 {
		return uint32(b.TotalSectors16)
	}
	return b.TotalSectors32
}

// VolumeSerialString formats the serial the way DOS prints it, as two groups of four hex digits.
func (b *BPB) VolumeSerialString() string {
	return fmt.Sprintf("%04X-%04X", b.VolumeSerial>>16, b.VolumeSerial&0xFFFF)
}

// HasExtendedFields reports whether the extended boot signature marks the serial (0x28) or the serial, label and
// type (0x29) as present.
func (b *BPB) HasExtendedFields() bool {
	return b.ExtendedBootSignature == consts.FAT_EXT_BOOT_SIGNATURE ||
		b.ExtendedBootSignature == consts.FAT_EXT_BOOT_SIGNATURE_OLD
}

// MarshalBinary encodes the BPB into its packed 51 byte on-disk form, starting at boot sector offset 0x0B.
func (b *BPB) MarshalBinary() ([]byte, error) {
	buf := make([]byte, consts.BPB_FIELD_SPAN)

	binary.LittleEndian.PutUint16(buf[0:2], b.BytesPerSector)
	buf[2] = b.SectorsPerCluster
	binary.LittleEndian.PutUint16(buf[3:5], b.ReservedSectors)
	buf[5] = b.NumberOfFATs
	binary.LittleEndian.PutUint16(buf[6:8], b.RootDirEntries)
	binary.LittleEndian.PutUint16(buf[8:10], b.TotalSectors16)
	buf[10] = b.MediaDescriptor
	binary.LittleEndian.PutUint16(buf[11:13], b.SectorsPerFAT16)

	binary.LittleEndian.PutUint16(buf[13:15], b.SectorsPerTrack)
	binary.LittleEndian.PutUint16(buf[15:17], b.NumHeads)
	binary.LittleEndian.PutUint32(buf[17:21], b.HiddenSectors)
	binary.LittleEndian.PutUint32(buf[21:25], b.TotalSectors32)

	buf[25] = b.DriveNumber
	buf[26] = b.Reserved
	buf[27] = b.ExtendedBootSignature
	binary.LittleEndian.PutUint32(buf[28:32], b.VolumeSerial)
	copy(buf[32:43], b.VolumeLabel[:])
	copy(buf[43:51], b.FileSystemType[:])

	return buf, nil
}

// UnmarshalBinary decodes a 51 byte field span that is already in memory. Data shorter than the span yields a
// *ReadError naming the first field that could not be filled; the receiver is left untouched in that case.
func (b *BPB) UnmarshalBinary(data []byte) error {
	var decoded BPB
	fr := newFieldReader(bytes.NewReader(data), 0, logging.DefaultLogger())
	if err := decoded.decode(fr); err != nil {
		return err
	}
	*b = decoded
	return nil
}

// decode fills every field from fr in on-disk order.
func (b *BPB) decode(fr *fieldReader) error {
	b.BytesPerSector = fr.uint16("BytesPerSector")
	b.SectorsPerCluster = fr.uint8("SectorsPerCluster")
	b.ReservedSectors = fr.uint16("ReservedSectors")
	b.NumberOfFATs = fr.uint8("NumberOfFATs")
	b.RootDirEntries = fr.uint16("RootDirEntries")
	b.TotalSectors16 = fr.uint16("TotalSectors16")
	b.MediaDescriptor = fr.uint8("MediaDescriptor")
	b.SectorsPerFAT16 = fr.uint16("SectorsPerFAT16")

	b.SectorsPerTrack = fr.uint16("SectorsPerTrack")
	b.NumHeads = fr.uint16("NumHeads")
	b.HiddenSectors = fr.uint32("HiddenSectors")
	b.TotalSectors32 = fr.uint32("TotalSectors32")

	b.DriveNumber = fr.uint8("DriveNumber")
	b.Reserved = fr.uint8("Reserved")
	b.ExtendedBootSignature = fr.uint8("ExtendedBootSignature")
	b.VolumeSerial = fr.uint32("VolumeSerial")
	fr.bytes("VolumeLabel", b.VolumeLabel[:])
	fr.bytes("FileSystemType", b.FileSystemType[:])

	return fr.err
}
