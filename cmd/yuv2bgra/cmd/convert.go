package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/pion/yuv2bgra/pkg/convert"
	"github.com/pion/yuv2bgra/pkg/frame"
	"github.com/pion/yuv2bgra/pkg/io/video"
)

type convertOptions struct {
	in, out       string
	format        frame.Format
	width, height int
	alpha         uint8
	frame         int
}

// NewConvertCmd creates the convert cobra command
func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "convert raw YUV frames to BGRA",
		Long: "Decodes raw YUV frames and converts them to BGRA. The --out extension picks the encoding: " +
			".bmp and .png write the frame selected by --frame, anything else receives the raw BGRA bytes of every frame.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var o convertOptions
			o.in, _ = cmd.Flags().GetString("in")
			o.out, _ = cmd.Flags().GetString("out")
			format, _ := cmd.Flags().GetString("format")
			o.format = frame.Format(format)
			o.width, _ = cmd.Flags().GetInt("width")
			o.height, _ = cmd.Flags().GetInt("height")
			o.alpha, _ = cmd.Flags().GetUint8("alpha")
			o.frame, _ = cmd.Flags().GetInt("frame")

			if o.in == "" && len(args) > 0 {
				o.in = args[0]
			}
			if o.in == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}
			if o.out == "" {
				return fmt.Errorf("output path is required")
			}

			return runConvert(ctx, o)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "raw frame file, - for stdin")
	pf.StringP("out", "o", "", "output path (.bmp, .png or raw BGRA)")
	pf.StringP("format", "f", string(frame.FormatI420), "input frame format (I420|I444|NV12|NV21)")
	pf.Int("width", 0, "frame width in pixels")
	pf.Int("height", 0, "frame height in pixels")
	pf.Uint8("alpha", 0xFF, "alpha value written to every pixel")
	pf.Int("frame", 0, "index of the frame written to .bmp/.png outputs")

	return cmd
}

func runConvert(ctx context.Context, o convertOptions) error {
	in, err := openInput(o.in)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := rawFrameReader(bufio.NewReader(in), o.format, o.width, o.height)
	if err != nil {
		return err
	}
	r := video.Merge(
		video.DetectChanges(time.Second, func(p video.Property) {
			logger.Debugf("input %dx%d %s at %.1f fps", p.Width, p.Height, p.SubsampleRatio, p.FrameRate)
		}),
		video.ToBGRA(o.alpha),
	)(src)

	ext := strings.ToLower(filepath.Ext(o.out))
	single := ext == ".bmp" || ext == ".png"

	out, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	var frames int
	for ; ; frames++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, _, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}
		bgra := img.(*convert.BGRA)

		if !single {
			if _, err := w.Write(bgra.Pix); err != nil {
				return err
			}
			continue
		}
		if frames != o.frame {
			continue
		}

		switch ext {
		case ".bmp":
			err = bmp.Encode(w, bgra.RGBA())
		default:
			err = png.Encode(w, bgra)
		}
		if err != nil {
			return fmt.Errorf("encode %s: %w", o.out, err)
		}
		logger.Infof("wrote frame %d to %s", frames, o.out)
		return w.Flush()
	}

	if single {
		return fmt.Errorf("frame %d not found, input has %d frames", o.frame, frames)
	}
	logger.Infof("wrote %d frames to %s", frames, o.out)
	return w.Flush()
}
