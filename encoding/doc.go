// Package encoding converts InterOp metric files to and from metric sets.
//
// Every metric group has one package-level Codec, such as Q, Tile or
// CorrectedInt, holding a VersionCodec per supported format version. A file
// starts with a header whose first byte selects the version; the rest of the
// file is a sequence of records whose layout that version fixes.
//
// # Decoding
//
//	set, err := encoding.Q.DecodeSet(data)
//	if errors.Is(err, errs.ErrIncompleteFile) {
//	    // the instrument is still writing the file, retry later
//	}
//
// DecodeSet consumes records until the data ends. Data ending inside a record
// fails with errs.ErrIncompleteFile. A file holding only its header decodes to
// an empty set.
//
// # Encoding
//
// AppendSet writes a set with the format version of its header. Decoding a
// well-formed file and encoding the result reproduces the file bytes:
//
//   - Groups that spread one record over several wire records (tile metrics,
//     image metrics version 1 and index metrics) merge every wire record of a
//     key into one record. The set remembers the wire order, so records whose
//     parts were interleaved with other records are written back interleaved.
//     Any change to the set drops that order and records are written one after
//     the other.
//   - Q-metric histograms keep their stored length: 50 counts, or one count
//     per bin for binned version 6 files.
//   - Collapsed q-metrics write the median only when the header record size
//     includes it.
//
// Fields a version does not carry decode to fixed defaults, documented on each
// record type in the metric package.
//
// # Thread Safety
//
// Codecs are immutable and safe for concurrent use. Sets are not.
package encoding
