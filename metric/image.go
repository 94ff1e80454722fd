package metric

// ImageMetric holds the contrast range of each channel for one cycle of a tile.
type ImageMetric struct {
	CycleID
	MinContrast []uint16
	MaxContrast []uint16
}

// ChannelCount returns the number of channels in the record.
func (m ImageMetric) ChannelCount() int {
	return len(m.MinContrast)
}

// SetChannel stores the contrast of channel ch, growing both arrays as needed.
func (m *ImageMetric) SetChannel(ch int, minContrast, maxContrast uint16) {
	for len(m.MinContrast) <= ch {
		m.MinContrast = append(m.MinContrast, 0)
	}
	for len(m.MaxContrast) <= ch {
		m.MaxContrast = append(m.MaxContrast, 0)
	}
	m.MinContrast[ch] = minContrast
	m.MaxContrast[ch] = maxContrast
}
