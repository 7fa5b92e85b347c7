package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bgrewell/fatread/pkg/bpb"
)

// LabelWidth is the column the field labels are right-aligned to.
const LabelWidth = 22

type line struct {
	label string
	value string
}

func lines(b *bpb.BPB) []line {
	return []line{
		{"BytesPerSector", fmt.Sprintf("%d", b.BytesPerSector)},
		{"SectorsPerCluster", fmt.Sprintf("%d", b.SectorsPerCluster)},
		{"ReservedSectors", fmt.Sprintf("%d", b.ReservedSectors)},
		{"NumberOfFATs", fmt.Sprintf("%d", b.NumberOfFATs)},
		{"RootDirEntries", fmt.Sprintf("%d", b.RootDirEntries)},
		{"TotalSectors16", fmt.Sprintf("%d", b.TotalSectors16)},
		{"MediaDescriptor", fmt.Sprintf("0x%X", b.MediaDescriptor)},
		{"SectorsPerFAT16", fmt.Sprintf("%d", b.SectorsPerFAT16)},
		{"SectorsPerTrack", fmt.Sprintf("%d", b.SectorsPerTrack)},
		{"Heads", fmt.Sprintf("%d", b.NumHeads)},
		{"HiddenSectors", fmt.Sprintf("%d", b.HiddenSectors)},
		{"TotalSectors32", fmt.Sprintf("%d", b.TotalSectors32)},
		{"DriveNumber", fmt.Sprintf("%d", b.DriveNumber)},
		{"Reserved", fmt.Sprintf("%d", b.Reserved)},
		{"ExtendedBootSignature", fmt.Sprintf("0x%02x", b.ExtendedBootSignature)},
		{"VolumeSerial", fmt.Sprintf("%d", b.VolumeSerial)},
		{"VolumeLabel", fmt.Sprintf("%11s", b.VolumeLabel.Raw())},
		{"FileSystemType", fmt.Sprintf("%8s", b.FileSystemType.Raw())},
	}
}

// Write prints b as one labeled line per field. When v carries problems they are listed after the fields.
//
// The header shows the label with trailing spaces and NULs trimmed. The VolumeLabel and FileSystemType lines
// keep the full 11 and 8 byte widths, so padding stays visible there.
func Write(w io.Writer, b *bpb.BPB, v *bpb.Validation) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Volume Information for \"%s\":\n\n", strings.TrimRight(b.VolumeLabel.Raw(), " \x00"))
	for _, l := range lines(b) {
		fmt.Fprintf(&sb, "%*s: %s\n", LabelWidth, l.label, l.value)
	}

	if v != nil && !v.Valid() {
		sb.WriteString("\nValidation:\n")
		for _, p := range v.Problems {
			fmt.Fprintf(&sb, "  - %s\n", p.Error())
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Document is the JSON form of a report.
type Document struct {
	BPB            *bpb.BPB `json:"bpb"`
	VolumeSerialID string   `json:"volume_serial_id"`
	ExtendedFields bool     `json:"extended_fields"`
	Valid          bool     `json:"valid"`
	Problems       []string `json:"problems,omitempty"`
}

// WriteJSON prints b and its verdict as an indented JSON document.
func WriteJSON(w io.Writer, b *bpb.BPB, v *bpb.Validation) error {
	doc := Document{
		BPB:            b,
		VolumeSerialID: b.VolumeSerialString(),
		ExtendedFields: b.HasExtendedFields(),
		Valid:          v == nil || v.Valid(),
	}
	if v != nil {
		for _, p := range v.Problems {
			doc.Problems = append(doc.Problems, p.Error())
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
