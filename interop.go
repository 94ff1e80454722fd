// Package interop reads and writes the binary metric files ("InterOp" files)
// that sequencing instruments write into the InterOp folder of a run.
//
// Each file holds one metric group: corrected intensities, error rates,
// extraction focus and intensity, image contrast, index assignments, quality
// score histograms, tile cluster counts, empirical phasing or extended tile
// metrics. A file starts with a small header carrying the format version and
// record size, followed by fixed or variable length records keyed by lane,
// tile and cycle or read.
//
// # Core Features
//
//   - Every published version of each metric group, with byte-faithful round trips
//   - Typed metric sets with O(1) lookup by lane, tile and cycle or read
//   - Detection of files that are still being written (errs.ErrIncompleteFile)
//   - Transparent decompression of zstd, s2, lz4 and gzip archived files
//   - Local, Amazon S3 and MinIO sources for run folders
//
// # Basic Usage
//
// Reading a file:
//
//	set, err := interop.Read(encoding.Tile, "run/InterOp/TileMetricsOut.bin")
//	if err != nil {
//	    return err
//	}
//	for _, m := range set.All() {
//	    fmt.Println(m.Lane, m.Tile, m.ClusterDensity())
//	}
//
// Writing a set back at a chosen capacity:
//
//	size, _ := interop.CalculateBufferSize(encoding.Tile, set)
//	data, err := interop.WriteToBuffer(encoding.Tile, set, size)
//
// Loading several groups of a run folder:
//
//	groups := registry.GroupsToLoad(registry.UnknownInstrument, registry.SummaryGroups(registry.UnknownInstrument)...)
//	run, err := interop.LoadRun(ctx, source.NewLocal("run"), groups)
//	q, ok := interop.RunSet(run, encoding.Q)
//
// Following a file the instrument is still writing:
//
//	w, _ := interop.NewWatcher(encoding.Error, path)
//	set, err := w.Wait(ctx, 30*time.Second)
//
// # Package Structure
//
// This package drives file and buffer I/O. The wire codecs live in encoding,
// headers in section, the in-memory sets in metric and the group table in
// registry. For type-erased handling of every group, use registry.Entry.Codec.
package interop
