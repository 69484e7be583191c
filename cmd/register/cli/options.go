package cli

import (
	"github.com/spf13/cobra"
)

// FormFlags holds one value per form field
type FormFlags struct {
	StudentName  string
	StudentID    string
	Major        string
	OtherMajor   string
	Project      string
	Acknowledged bool
	// SignaturePath is a JSON signature recording
	SignaturePath string
}

func (o *FormFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.StudentName, "name", "", "Student name.")
	cmd.Flags().StringVar(&o.StudentID, "student-id", "", "Student ID, e.g. SU-2024-001.")
	cmd.Flags().StringVar(&o.Major, "major", "", "Major; one of the values listed by 'register majors'.")
	cmd.Flags().StringVar(&o.OtherMajor, "other-major", "", "Major name when --major is Other.")
	cmd.Flags().StringVar(&o.Project, "project", "", "Project name or short description.")
	cmd.Flags().BoolVar(&o.Acknowledged, "acknowledge", false, "Agree to the participation acknowledgement.")
	cmd.Flags().StringVar(&o.SignaturePath, "signature", "", "Path to a signature recording (JSON strokes).")
	_ = cmd.MarkFlagFilename("signature", "json")
}

// RelayFlags locate the relay
type RelayFlags struct {
	URL string
}

func (o *RelayFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.URL, "relay", "http://localhost:8080", "Base URL of the registration relay.")
}
