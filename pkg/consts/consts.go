package consts

const (
	// Offset of the BIOS Parameter Block from the start of the boot sector. The first 11 bytes hold the jump
	// instruction (3 bytes) and the OEM name (8 bytes).
	BPB_START_OFFSET = 0x0B

	// Number of bytes covered by the DOS 2.0 (13), 3.31 (12) and 3.4 (26) fields, packed with no padding.
	BPB_FIELD_SPAN = 51

	// The smallest stream that can hold a complete BPB.
	BPB_MIN_STREAM_SIZE = BPB_START_OFFSET + BPB_FIELD_SPAN

	// The only sector size accepted as valid.
	FAT_SECTOR_SIZE = 512

	// Width of the volume label text field.
	FAT_VOLUME_LABEL_SIZE = 11

	// Width of the filesystem type text field.
	FAT_FS_TYPE_SIZE = 8

	// Extended boot signatures. 0x29 means the serial, label and type are present; 0x28 means only the serial is.
	FAT_EXT_BOOT_SIGNATURE     = 0x29
	FAT_EXT_BOOT_SIGNATURE_OLD = 0x28

	// Media descriptor for fixed (non-removable) disks.
	FAT_MEDIA_FIXED = 0xF8

	// Boot sector signature found at offset 510.
	FAT_BOOT_SIGNATURE_OFFSET = 510
	FAT_BOOT_SIGNATURE        = 0xAA55

	// Filler used to pad text fields (0x20, space).
	FAT_FILLER = " "
)
