package metric

import "time"

// NumChannels is the channel count of extraction metric files.
const NumChannels = 4

// C# DateTime.ToBinary constants.
const (
	ticksMask      = 0x3fffffffffffffff
	ticksThreshold = 0x3fffff36d5964000
	ticksOffset    = 0x4000000000000000
	ticksNegOffset = 0xc92a69c000
	ticksLocalKind = uint64(1) << 63
	ticksPerSecond = 10_000_000
	ticksTo1970    = 621355968000000000
)

// ExtractionMetric holds focus and peak intensity for one cycle of a tile.
type ExtractionMetric struct {
	CycleID
	// FWHM is the focus score, the full width at half maximum, per channel.
	FWHM         [NumChannels]float32
	MaxIntensity [NumChannels]uint16
	// DateTimeRaw is the extraction time in C# DateTime.ToBinary form.
	DateTimeRaw uint64
}

// DateTime decodes DateTimeRaw into a UTC time.
func (m ExtractionMetric) DateTime() time.Time {
	ticks := int64(m.DateTimeRaw & ticksMask) //nolint:gosec
	if ticks > ticksThreshold {
		ticks -= ticksOffset
	}
	if ticks < 0 {
		ticks += ticksNegOffset
	}
	d := ticks - ticksTo1970

	return time.Unix(d/ticksPerSecond, (d%ticksPerSecond)*100).UTC()
}

// EncodeDateTime converts t to the C# DateTime.ToBinary form stored in extraction files.
func EncodeDateTime(t time.Time) uint64 {
	val := t.Unix()*ticksPerSecond + int64(t.Nanosecond()/100) + ticksTo1970
	if val < 0 {
		val += ticksOffset
	}

	return uint64(val) | ticksLocalKind //nolint:gosec
}
