// Package section defines the low-level binary structures of an InterOp metric file.
//
// Every metric file starts with a short preamble followed by a sequence of records
// that run until the end of the file. This package decodes and encodes the preamble
// (Header) and the identifier block that opens every record (RecordID). The record
// payloads themselves are handled by the encoding package.
//
// # File Structure
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Version (1 byte)                                         │
//	│ Record size (1 byte, absent for index metrics v1)        │
//	│   (4 bytes in run-level summary files)                   │
//	│ Metadata (optional, group and version specific)          │
//	│  - Q-score bins: flag, count, lower[], upper[], value[]  │
//	│  - Image channel count                                   │
//	├──────────────────────────────────────────────────────────┤
//	│ Record 0: RecordID + payload                             │
//	│ Record 1: RecordID + payload                             │
//	│ ...                                                      │
//	└──────────────────────────────────────────────────────────┘
//
// A RecordID holds the lane, the tile and, depending on the group, the cycle or
// the read. Newer format versions widen the tile number from 16 to 32 bits.
//
// # Byte Order
//
// All multi-byte integers are little-endian. Floating point fields are IEEE-754
// binary32, except the binary64 counts of run-level files. See the endian package.
//
// # Layouts
//
// The preamble shape differs between groups and versions. A Layout describes it
// for one (group, version) pair and is supplied by the codec registry through a
// LayoutResolver, so this package stays free of per-group knowledge.
package section
