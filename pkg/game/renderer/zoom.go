package renderer

// Zoom steps through the configured viewport sizes.
// Zooming in shows fewer tiles, zooming out shows more.
type Zoom struct {
	sizes []int
	index int
}

// NewZoom starts at index, clamped to the available sizes
func NewZoom(sizes []int, index int) *Zoom {
	z := &Zoom{sizes: sizes}
	z.index = z.clamp(index)
	return z
}

func (z *Zoom) clamp(i int) int {
	if i < 0 || len(z.sizes) == 0 {
		return 0
	}
	if i >= len(z.sizes) {
		return len(z.sizes) - 1
	}
	return i
}

// In steps to the next smaller window. It reports whether anything changed.
func (z *Zoom) In() bool {
	if z.index == 0 {
		return false
	}
	z.index--
	return true
}

// Out steps to the next larger window. It reports whether anything changed.
func (z *Zoom) Out() bool {
	if z.index >= len(z.sizes)-1 {
		return false
	}
	z.index++
	return true
}

// Index returns the current position in the size list
func (z *Zoom) Index() int {
	return z.index
}

// Size returns the current window size in tiles
func (z *Zoom) Size() int {
	if len(z.sizes) == 0 {
		return 1
	}
	return z.sizes[z.index]
}

// TileWidth returns the pixel width of one tile when size tiles span screenWidth
func TileWidth(screenWidth, size int) int {
	if size <= 0 {
		return screenWidth
	}
	return screenWidth / size
}
