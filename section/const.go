package section

const (
	VersionSize      = 1 // size of the version byte
	RecordSizeSize   = 1 // size of the record size byte
	WideRecordSize   = 4 // size of the 32-bit record size word of run-level files
	BinFlagSize      = 1 // size of the has-bins flag
	BinCountSize     = 1 // size of the bin count
	ChannelCountSize = 1 // size of the image channel count

	MaxBinCount = 255 // maximum number of q-score bins a header can declare

	LaneSize        = 2 // lane number width on the wire
	ShortTileSize   = 2 // tile number width for legacy versions
	LongTileSize    = 4 // tile number width for versions with 32-bit tiles
	CycleOrReadSize = 2 // cycle or read number width on the wire
)
