package metric

// PhasingMetric holds empirical phasing weights for one cycle of a tile.
type PhasingMetric struct {
	CycleID
	Phasing    float32
	Prephasing float32
}
