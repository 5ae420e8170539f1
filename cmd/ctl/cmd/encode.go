package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skeptict/dttensor.go/pkg/dttensor"
	"github.com/spf13/cobra"
)

// NewEncodeCmd creates the encode cobra command
func NewEncodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode an image into a DTTensor buffer",
		Long:  "Decodes a PNG/JPEG/GIF image and packs it into the DTTensor half-precision format. Transparency selects a 4-channel tensor unless --force-rgb is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			forceRGB, _ := cmd.Flags().GetBool("force-rgb")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			compress, _ := cmd.Flags().GetBool("zst")

			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}

			if err := validateResize(width, height); err != nil {
				return err
			}

			data, err := readInput(in)
			if err != nil {
				return err
			}
			img, err := dttensor.DecodeRaster(data)
			if err != nil {
				return err
			}
			if width > 0 && height > 0 {
				img = dttensor.Resize(img, width, height)
			}
			buf, err := dttensor.Encode(img, forceRGB)
			if err != nil {
				return err
			}
			hdr, _ := dttensor.ParseHeader(buf)
			slog.InfoContext(ctx, "encoded tensor",
				slog.Int("width", int(hdr.Width)),
				slog.Int("height", int(hdr.Height)),
				slog.Int("channels", int(hdr.Channels)),
				slog.Int("bytes", len(buf)))
			return writeOutput(out, buf, compress)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "Input image path, or - for stdin")
	pf.StringP("out", "o", "-", "Output tensor path, or - for stdout")
	pf.Bool("force-rgb", false, "Drop the alpha channel even when transparency is present")
	pf.Int("width", 0, "Resize to this width before encoding (requires --height)")
	pf.Int("height", 0, "Resize to this height before encoding (requires --width)")
	pf.Bool("zst", false, "zstd-compress the output file")

	return cmd
}

// validateResize rejects a lone resize dimension: --width and --height
// only act as a pair.
func validateResize(width, height int) error {
	if (width > 0) != (height > 0) {
		return fmt.Errorf("--width and --height must be set together (got width=%d, height=%d)", width, height)
	}
	return nil
}
