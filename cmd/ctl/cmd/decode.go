package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skeptict/dttensor.go/pkg/dttensor"
	"github.com/skeptict/dttensor.go/pkg/dttensor/family"
	"github.com/spf13/cobra"
)

// NewDecodeCmd creates the decode cobra command
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a DTTensor buffer into a PNG image",
		Long:  "Parses a DTTensor buffer and renders it to PNG. Latent tensors are projected to an approximate RGB preview; pass --model so 16-channel latents pick the right projection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			model, _ := cmd.Flags().GetString("model")

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
			fam := family.Detect(model)
			img, err := dttensor.Decode(data, fam)
			if err != nil {
				return err
			}
			png, err := dttensor.EncodePNG(img)
			if err != nil {
				return err
			}
			slog.InfoContext(ctx, "decoded tensor",
				slog.String("family", fam.String()),
				slog.Int("width", img.Bounds().Dx()),
				slog.Int("height", img.Bounds().Dy()))
			return writeOutput(out, png, false)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "Input tensor path, or - for stdin")
	pf.StringP("out", "o", "-", "Output PNG path, or - for stdout")
	pf.StringP("model", "m", "", "Model filename or version tag for latent family detection")

	return cmd
}
