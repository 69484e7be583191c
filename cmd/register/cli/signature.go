package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofia-hackathon/registration/internal/signature"
)

func Signature() *cobra.Command {
	var (
		recordingPath string
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "signature --strokes FILE --out FILE",
		Short: "Render a signature recording to a PNG file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := loadRecording(recordingPath)
			if err != nil {
				return err
			}
			dataURL, err := rec.Capture()
			if err != nil {
				return err
			}
			if dataURL == "" {
				return errors.New("signature recording has no strokes")
			}
			data, err := signature.DecodeDataURL(dataURL)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write signature: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&recordingPath, "strokes", "", "Path to a signature recording (JSON strokes).")
	cmd.Flags().StringVar(&outPath, "out", "signature.png", "Where to write the PNG.")
	_ = cmd.MarkFlagRequired("strokes")
	return cmd
}
