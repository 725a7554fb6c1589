package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"math/rand"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/pion/yuv2bgra/pkg/convert"
	"github.com/pion/yuv2bgra/pkg/convert/base"
	"github.com/pion/yuv2bgra/pkg/convert/vec128"
	"github.com/pion/yuv2bgra/pkg/frame"
	"github.com/pion/yuv2bgra/pkg/io/video"
	"github.com/pion/yuv2bgra/pkg/videotest"
)

type verifyOptions struct {
	in            string
	format        frame.Format
	width, height int
	alpha         uint8
	frames        int
	seed          int64
	source        string
}

// NewVerifyCmd creates the verify cobra command
func NewVerifyCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "compare the scalar and vector converters",
		Long: "Converts every frame with both the scalar and the 128-bit vector converter and prints an xxhash64 " +
			"digest of each output. Frames come from --in, or are generated when no input is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var o verifyOptions
			o.in, _ = cmd.Flags().GetString("in")
			format, _ := cmd.Flags().GetString("format")
			o.format = frame.Format(format)
			o.width, _ = cmd.Flags().GetInt("width")
			o.height, _ = cmd.Flags().GetInt("height")
			o.alpha, _ = cmd.Flags().GetUint8("alpha")
			o.frames, _ = cmd.Flags().GetInt("frames")
			o.seed, _ = cmd.Flags().GetInt64("seed")
			o.source, _ = cmd.Flags().GetString("source")

			if o.in == "" && len(args) > 0 {
				o.in = args[0]
			}

			return runVerify(ctx, cmd.OutOrStdout(), o)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "raw frame file, - for stdin; random frames when empty")
	pf.StringP("format", "f", string(frame.FormatI420), "frame format (I420|I444|NV12|NV21)")
	pf.Int("width", 640, "frame width in pixels")
	pf.Int("height", 480, "frame height in pixels")
	pf.Uint8("alpha", 0xFF, "alpha value written to every pixel")
	pf.Int("frames", 8, "number of generated frames")
	pf.Int64("seed", 1, "random frame seed")
	pf.String("source", "random", "generated frames when --in is empty (random|bars)")

	return cmd
}

func runVerify(ctx context.Context, w io.Writer, o verifyOptions) error {
	var src video.Reader
	if o.in != "" {
		in, err := openInput(o.in)
		if err != nil {
			return err
		}
		defer in.Close()

		src, err = rawFrameReader(in, o.format, o.width, o.height)
		if err != nil {
			return err
		}
	} else {
		if o.width <= 0 || o.height <= 0 {
			return fmt.Errorf("invalid frame size %dx%d", o.width, o.height)
		}
		ratio := image.YCbCrSubsampleRatio420
		if frame.Format(strings.ToUpper(string(o.format))) == frame.FormatI444 {
			ratio = image.YCbCrSubsampleRatio444
		}
		switch o.source {
		case "random":
			src = randomFrameReader(rand.New(rand.NewSource(o.seed)), ratio, o.width, o.height, o.frames)
		case "bars":
			var err error
			src, err = videotest.ColorBars(o.width, o.height, ratio, o.frames)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown frame source %q", o.source)
		}
	}

	fmt.Fprintf(w, "vector tier enabled: %v\n", vec128.Enabled())

	var frames, mismatches int
	for ; ; frames++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, _, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}

		scalar, vector, err := convertBothTiers(img.(*image.YCbCr), o.alpha)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}

		status := "ok"
		if !bytes.Equal(scalar, vector) {
			status = "MISMATCH"
			mismatches++
		}
		fmt.Fprintf(w, "frame %d: base %s vec128 %s %s\n", frames, digest(scalar), digest(vector), status)
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d frames differ between tiers", mismatches, frames)
	}
	logger.Infof("%d frames identical across tiers", frames)
	return nil
}

func digest(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// convertBothTiers runs src through the scalar and the vector converter
// regardless of what the host would pick.
func convertBothTiers(src *image.YCbCr, alpha uint8) (scalar, vector []byte, err error) {
	r := src.Rect
	w, h := r.Dx(), r.Dy()
	if w == 0 || h == 0 {
		return nil, nil, fmt.Errorf("empty frame %v", r)
	}
	y := src.Y[src.YOffset(r.Min.X, r.Min.Y):]
	cb := src.Cb[src.COffset(r.Min.X, r.Min.Y):]
	cr := src.Cr[src.COffset(r.Min.X, r.Min.Y):]
	scalar = make([]byte, 4*w*h)
	vector = make([]byte, 4*w*h)

	switch src.SubsampleRatio {
	case image.YCbCrSubsampleRatio420:
		if w%2 != 0 || h%2 != 0 {
			return nil, nil, fmt.Errorf("%w: %v", convert.ErrOddDimensions, r)
		}
		if w < vec128.DA {
			return nil, nil, fmt.Errorf("4:2:0 frames need at least %d columns for the vector converter, got %d", vec128.DA, w)
		}
		base.YUV420pToBGRA(y, src.YStride, cb, src.CStride, cr, src.CStride, w, h, scalar, 4*w, alpha)
		vec128.YUV420pToBGRA(y, src.YStride, cb, src.CStride, cr, src.CStride, w, h, vector, 4*w, alpha)
	case image.YCbCrSubsampleRatio444:
		if w < vec128.A {
			return nil, nil, fmt.Errorf("4:4:4 frames need at least %d columns for the vector converter, got %d", vec128.A, w)
		}
		base.YUV444pToBGRA(y, src.YStride, cb, src.CStride, cr, src.CStride, w, h, scalar, 4*w, alpha)
		vec128.YUV444pToBGRA(y, src.YStride, cb, src.CStride, cr, src.CStride, w, h, vector, 4*w, alpha)
	default:
		return nil, nil, fmt.Errorf("%w: %s", convert.ErrUnsupportedSubsampleRatio, src.SubsampleRatio)
	}
	return scalar, vector, nil
}
