// Package metric defines the in-memory model of InterOp metric files.
//
// Each metric group has its own record type (ErrorMetric, TileMetric, QMetric, ...).
// All record types satisfy the Record interface and are identified by a Key made
// of the lane, the tile and either the cycle or the read. Tile-level groups use
// zero for the third component.
//
// A Set holds the records of one file in read order together with the file Header
// and an index from Key to position:
//
//	set := metric.NewSet[metric.ErrorMetric](header)
//	set.Insert(metric.ErrorMetric{CycleID: metric.CycleID{Lane: 1, Tile: 1114, Cycle: 1}})
//	rec, ok := set.Get(1, 1114, 1)
//
// # Duplicate Keys
//
// Inserting a record whose key is already present replaces the stored record in
// place. The set never holds two records with the same key, so iterating the
// full sequence and looking up by key always agree.
//
// # Thread Safety
//
// A Set is not safe for concurrent mutation. Distinct sets may be built
// concurrently.
package metric
