// Package render turns one frame of world state into a packed pixel buffer
// using one bound ray casting strategy, and overlays the frame-rate digits.
package render

// The framebuffer is a dense width×height array of packed 32-bit pixels owned
// by the host. Channel order is ABGR within the uint32, which in little-endian
// memory is the R,G,B,A byte sequence display textures expect.

// PackColor packs an opaque RGB color into the framebuffer pixel format.
func PackColor(r, g, b uint8) uint32 {
	return 0xff000000 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackColor splits a packed pixel back into its RGB channels.
func UnpackColor(p uint32) (r, g, b uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16)
}

// AppendBytes appends the framebuffer's pixels to dst in R,G,B,A byte order,
// the layout WritePixels-style presentation APIs take.
func AppendBytes(dst []byte, fb []uint32) []byte {
	for _, p := range fb {
		dst = append(dst, uint8(p), uint8(p>>8), uint8(p>>16), uint8(p>>24))
	}
	return dst
}
