package metric

// Point2D is a location on the flow cell surface.
type Point2D struct {
	X float32
	Y float32
}

// ExtendedTileMetric holds occupancy data for one tile.
type ExtendedTileMetric struct {
	TileID
	ClusterCountOccupied float32
	// UpperLeft is the tile origin, available from version 3.
	UpperLeft Point2D
}
