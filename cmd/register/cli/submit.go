package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofia-hackathon/registration/internal/registration/client"
	"github.com/sofia-hackathon/registration/internal/registration/domain"
	"github.com/sofia-hackathon/registration/internal/registration/form"
	"github.com/sofia-hackathon/registration/internal/registration/validation"
	"github.com/sofia-hackathon/registration/internal/signature"
)

func Submit() *cobra.Command {
	var (
		fields FormFlags
		relay  RelayFlags
	)

	cmd := &cobra.Command{
		Use:   "submit [OPTIONS]",
		Short: "Fill in and submit the registration form.",
		Long: `Fill in and submit the registration form.

    Every field is required. The signature is replayed from a JSON recording of
    pointer strokes:

        {"width": 600, "height": 160, "pixelRatio": 2,
         "strokes": [[{"x": 12, "y": 80}, {"x": 40, "y": 62}]]}

    The form is validated before anything is sent; all problems are reported
    at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := form.New()
			if err := fill(f, fields); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", domain.AcknowledgementText)

			err := f.Submit(cmd.Context(), client.NewRelayClient(relay.URL))
			var verrs validation.Errors
			switch {
			case errors.As(err, &verrs):
				printFieldErrors(cmd.ErrOrStderr(), verrs)
				return err
			case err != nil:
				fmt.Fprintln(cmd.ErrOrStderr(), f.Message())
				return err
			}

			fmt.Fprintln(out, "Registration Complete")
			return nil
		},
	}
	fields.AddFlags(cmd)
	relay.AddFlags(cmd)
	return cmd
}

func fill(f *form.Form, fields FormFlags) error {
	if fields.Major != "" && !domain.IsListedMajor(fields.Major) {
		return fmt.Errorf("unknown major %q; run 'register majors' for the list", fields.Major)
	}

	values := []struct {
		field domain.Field
		value string
	}{
		{domain.FieldStudentName, fields.StudentName},
		{domain.FieldStudentID, fields.StudentID},
		{domain.FieldMajor, fields.Major},
		{domain.FieldOtherMajor, fields.OtherMajor},
		{domain.FieldProject, fields.Project},
	}
	for _, v := range values {
		if err := f.Set(v.field, v.value); err != nil {
			return err
		}
	}
	f.SetAcknowledged(fields.Acknowledged)

	if fields.SignaturePath == "" {
		return nil
	}
	rec, err := loadRecording(fields.SignaturePath)
	if err != nil {
		return err
	}
	pad, err := signature.NewPad(signature.Options{
		Width:      rec.Width,
		Height:     rec.Height,
		PixelRatio: rec.PixelRatio,
	}, f.SetSignature)
	if err != nil {
		return err
	}
	return signature.Replay(pad, rec.Strokes)
}

func loadRecording(path string) (*signature.Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open signature recording: %w", err)
	}
	defer file.Close()
	return signature.LoadRecording(file)
}

func printFieldErrors(w io.Writer, errs validation.Errors) {
	for _, fe := range errs {
		fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
	}
}
