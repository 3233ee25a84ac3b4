package render

import "fmt"

// The overlay is a small block of bitmap digits blitted into the top-left
// corner after the trace, so it is never overdrawn. It overwrites its region
// unconditionally and never touches pixels outside it.

// Overlay region geometry, exported so hosts can avoid drawing under it.
const (
	OverlayX      = 2
	OverlayY      = 2
	OverlayDigits = 4
	glyphWidth    = 8
	glyphHeight   = 8
	// OverlayWidth and OverlayHeight are the full region size in pixels.
	OverlayWidth  = OverlayDigits * glyphWidth
	OverlayHeight = glyphHeight
)

// maxOverlayValue is the largest value the digit slots can show.
const maxOverlayValue = 9999

// digitGlyphs is an 8x8 bitmap per digit, one byte per row, MSB leftmost.
var digitGlyphs = [10][glyphHeight]uint8{
	{0x7C, 0xC6, 0xCE, 0xDE, 0xF6, 0xE6, 0x7C, 0x00}, // 0
	{0x30, 0x70, 0x30, 0x30, 0x30, 0x30, 0xFC, 0x00}, // 1
	{0x78, 0xCC, 0x0C, 0x38, 0x60, 0xCC, 0xFC, 0x00}, // 2
	{0x78, 0xCC, 0x0C, 0x38, 0x0C, 0xCC, 0x78, 0x00}, // 3
	{0x1C, 0x3C, 0x6C, 0xCC, 0xFE, 0x0C, 0x1E, 0x00}, // 4
	{0xFC, 0xC0, 0xF8, 0x0C, 0x0C, 0xCC, 0x78, 0x00}, // 5
	{0x38, 0x60, 0xC0, 0xF8, 0xCC, 0xCC, 0x78, 0x00}, // 6
	{0xFC, 0xCC, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00}, // 7
	{0x78, 0xCC, 0xCC, 0x78, 0xCC, 0xCC, 0x78, 0x00}, // 8
	{0x78, 0xCC, 0xCC, 0x7C, 0x0C, 0x18, 0x70, 0x00}, // 9
}

var (
	overlayInk = PackColor(120, 255, 120)
	overlayBG  = PackColor(0, 0, 0)
)

// DrawOverlay blits the value's digits, right-aligned with blank leading
// slots, into the corner region of an already-traced buffer. Values beyond
// the digit capacity are clamped rather than widening the region.
func (r *Renderer) DrawOverlay(fb []uint32, value uint32) {
	if len(fb) != r.width*r.height {
		panic(fmt.Sprintf("render: framebuffer length %d, expected %d", len(fb), r.width*r.height))
	}

	if value > maxOverlayValue {
		value = maxOverlayValue
	}

	// Decompose right-to-left; -1 marks a blank slot.
	var slots [OverlayDigits]int
	for i := range slots {
		slots[i] = -1
	}
	i := OverlayDigits - 1
	for {
		slots[i] = int(value % 10)
		value /= 10
		if value == 0 || i == 0 {
			break
		}
		i--
	}

	for slot, d := range slots {
		ox := OverlayX + slot*glyphWidth
		for row := 0; row < glyphHeight; row++ {
			y := OverlayY + row
			if y >= r.height {
				break
			}
			var bits uint8
			if d >= 0 {
				bits = digitGlyphs[d][row]
			}
			for col := 0; col < glyphWidth; col++ {
				x := ox + col
				if x >= r.width {
					break
				}
				px := overlayBG
				if bits&(0x80>>col) != 0 {
					px = overlayInk
				}
				fb[y*r.width+x] = px
			}
		}
	}
}
