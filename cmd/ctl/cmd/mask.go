package cmd

import (
	"context"
	"fmt"

	"github.com/skeptict/dttensor.go/pkg/dttensor"
	"github.com/spf13/cobra"
)

// NewMaskCmd creates the mask cobra command
func NewMaskCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Derive an inpainting mask from an image's alpha channel",
		Long:  "Builds a single-channel paint/preserve mask buffer: transparent pixels are marked for inpainting, opaque pixels are preserved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")

			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}

			data, err := readInput(in)
			if err != nil {
				return err
			}
			img, err := dttensor.DecodeRaster(data)
			if err != nil {
				return err
			}
			buf, err := dttensor.EncodeMask(img)
			if err != nil {
				return err
			}
			return writeOutput(out, buf, false)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "Input image path, or - for stdin")
	pf.StringP("out", "o", "-", "Output mask path, or - for stdout")

	return cmd
}
