// Package compress handles compressed copies of InterOp metric files.
//
// Instruments write metric files uncompressed, but archived run folders are
// often stored compressed. Every supported algorithm uses a framed format
// with a leading magic number, so Detect can tell the algorithm from the
// first bytes of a file:
//
//   - Zstd (format.CompressionZstd): best ratio, the default for archives
//   - S2 (format.CompressionS2): S2 stream format, fastest compression
//   - LZ4 (format.CompressionLZ4): LZ4 frame format, fastest decompression
//   - Gzip (format.CompressionGzip): widest tool support
//
// Uncompressed metric files start with a small version byte and never match
// any of the magics.
//
// # Usage
//
//	data, ct, err := compress.Decompress(raw)
//	if err != nil {
//	    return err
//	}
//	log.Printf("file was %s compressed", ct)
//
// # Build Tags
//
// The Zstd codec uses klauspost/compress by default. Building with cgo and
// the gozstd tag switches to the libzstd binding:
//
//	go build -tags gozstd ./...
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Encoders and decoders are pooled
// internally.
package compress
