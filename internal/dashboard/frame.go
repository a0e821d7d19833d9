package dashboard

// FrameModulus bounds the frame counter.
const FrameModulus = 100

// FrameCounter drives animation. It cycles through [0, FrameModulus) and is
// advanced exactly once per render cycle by the renderer goroutine.
type FrameCounter struct {
	n int
}

// Value returns the current frame.
func (f *FrameCounter) Value() int {
	return f.n
}

// Next advances the counter and returns the new frame.
func (f *FrameCounter) Next() int {
	f.n = (f.n + 1) % FrameModulus
	return f.n
}
