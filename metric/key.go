package metric

import "fmt"

// Key identifies a record within a set.
type Key struct {
	Lane uint32
	Tile uint32
	// ID is the cycle for cycle-level groups, the read for read-level groups
	// and zero for tile-level groups.
	ID uint32
}

// NewKey creates a key from its components.
func NewKey(lane, tile, cycleOrRead uint32) Key {
	return Key{Lane: lane, Tile: tile, ID: cycleOrRead}
}

func (k Key) String() string {
	return fmt.Sprintf("%d_%d_%d", k.Lane, k.Tile, k.ID)
}

// Record is implemented by every metric record type.
type Record interface {
	Key() Key
}

// CycleID identifies a cycle-level record.
type CycleID struct {
	Lane  uint32
	Tile  uint32
	Cycle uint32
}

// Key implements Record.
func (id CycleID) Key() Key {
	return Key{Lane: id.Lane, Tile: id.Tile, ID: id.Cycle}
}

// ReadID identifies a read-level record.
type ReadID struct {
	Lane uint32
	Tile uint32
	Read uint32
}

// Key implements Record.
func (id ReadID) Key() Key {
	return Key{Lane: id.Lane, Tile: id.Tile, ID: id.Read}
}

// TileID identifies a tile-level record.
type TileID struct {
	Lane uint32
	Tile uint32
}

// Key implements Record.
func (id TileID) Key() Key {
	return Key{Lane: id.Lane, Tile: id.Tile}
}
