package cmd

import (
	"context"
	"fmt"

	"github.com/skeptict/dttensor.go/pkg/dttensor"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze cobra command
func NewAnalyzeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze DTTensor buffer structure",
		Long:  "Parses a DTTensor buffer and displays the header, payload sample statistics and the layout/range heuristic diagnostics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")

			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			return runAnalyze(filePath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "DTTensor file path to analyze")

	return cmd
}

func runAnalyze(filePath string) error {
	data, err := readInput(filePath)
	if err != nil {
		return err
	}
	info, err := dttensor.AnalyzeBuffer(data)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	hdr := info.Header
	fmt.Println("=== Header ===")
	fmt.Printf("Compression: %d\n", hdr.Compression)
	fmt.Printf("MemoryKind: 0x%X\n", hdr.MemoryKind)
	fmt.Printf("Format: 0x%02X (0x01=NCHW, 0x02=NHWC)\n", hdr.Format)
	fmt.Printf("DataType: 0x%X\n", hdr.DataType)
	fmt.Printf("Batch: %d\n", hdr.Batch)
	fmt.Printf("Width: %d\n", hdr.Width)
	fmt.Printf("Height: %d\n", hdr.Height)
	fmt.Printf("Channels: %d\n", hdr.Channels)

	if hdr.Compression != dttensor.CompressionNone {
		fmt.Println("\nPayload is compressed; statistics unavailable.")
		return nil
	}

	fmt.Println("\n=== Payload ===")
	fmt.Printf("Samples: %d\n", info.Samples)
	fmt.Printf("Min: %.6f\n", info.Min)
	fmt.Printf("Max: %.6f\n", info.Max)
	fmt.Printf("Mean: %.6f\n", info.Mean)
	fmt.Printf("NonFinite: %d\n", info.NonFinite)
	fmt.Printf("Fingerprint: %s\n", info.Fingerprint)
	fmt.Printf("Digest: %s\n", info.Digest)

	fmt.Println("\n=== Heuristics (diagnostic only; header format flag wins) ===")
	fmt.Printf("NegativeFraction: %.4f\n", info.NegativeFraction)
	fmt.Printf("RangeGuess: %s\n", info.RangeGuess)
	if hdr.Channels == 3 {
		fmt.Printf("LayoutGuess: %s\n", info.LayoutGuess)
	}
	return nil
}
