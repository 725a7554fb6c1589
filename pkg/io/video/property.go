package video

import "image"

// Property represents a video's basic properties
type Property struct {
	Width, Height int
	FrameRate     float32
	// SubsampleRatio is only meaningful for YCbCr frames.
	SubsampleRatio image.YCbCrSubsampleRatio
	YCbCr          bool
}
