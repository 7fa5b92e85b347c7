package testing

import (
	"encoding/binary"

	"github.com/bgrewell/fatread/pkg/bpb"
	"github.com/bgrewell/fatread/pkg/consts"
	"github.com/bgrewell/fatread/pkg/encoding"
)

// CanonicalFAT16 returns the BPB of a 10 MiB FAT16 volume that uses the 32-bit size field.
func CanonicalFAT16() bpb.BPB {
	b := bpb.BPB{
		BytesPerSector:        512,
		SectorsPerCluster:     4,
		ReservedSectors:       1,
		NumberOfFATs:          2,
		RootDirEntries:        512,
		TotalSectors16:        0,
		MediaDescriptor:       consts.FAT_MEDIA_FIXED,
		SectorsPerFAT16:       20,
		SectorsPerTrack:       32,
		NumHeads:              2,
		HiddenSectors:         0,
		TotalSectors32:        20480,
		DriveNumber:           0x80,
		Reserved:              0,
		ExtendedBootSignature: consts.FAT_EXT_BOOT_SIGNATURE,
		VolumeSerial:          0x1234ABCD,
	}
	SetText(&b, "NO NAME", "FAT16")
	return b
}

// Floppy144 returns the BPB of a 1.44 MB FAT12 floppy, which fits its size in the 16-bit field.
func Floppy144() bpb.BPB {
	b := bpb.BPB{
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
		ExtendedBootSignature: consts.FAT_EXT_BOOT_SIGNATURE,
		VolumeSerial:          0x0BADF00D,
	}
	SetText(&b, "NOLABEL", "FAT12")
	return b
}

// SetText space pads label and fsType into the fixed-width text fields, truncating when too long.
func SetText(b *bpb.BPB, label, fsType string) {
	copy(b.VolumeLabel[:], encoding.MarshalString(label, consts.FAT_VOLUME_LABEL_SIZE))
	copy(b.FileSystemType[:], encoding.MarshalString(fsType, consts.FAT_FS_TYPE_SIZE))
}

// BootSector lays b out in a full 512 byte boot sector with a jump instruction, an OEM name and the 0x55AA
// signature, the way a formatter would write it.
func BootSector(b bpb.BPB) []byte {
	sector := make([]byte, consts.FAT_SECTOR_SIZE)

	// BS_jmpBoot
	sector[0] = 0xEB
	sector[1] = 0x3C
	sector[2] = 0x90

	// BS_OEMName
	copy(sector[3:consts.BPB_START_OFFSET], encoding.MarshalString("MSWIN4.1", 8))

	data, err := b.MarshalBinary()
	if err != nil {
		panic(err)
	}
	copy(sector[consts.BPB_START_OFFSET:], data)

	binary.LittleEndian.PutUint16(sector[consts.FAT_BOOT_SIGNATURE_OFFSET:], consts.FAT_BOOT_SIGNATURE)
	return sector
}
