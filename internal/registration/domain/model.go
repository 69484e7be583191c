package domain

// FormRecord is the complete set of fields a participant submits in one registration attempt
type FormRecord struct {
	StudentName  string `json:"studentName"`
	StudentID    string `json:"studentId"`
	Major        string `json:"major"`
	OtherMajor   string `json:"otherMajor"` // only read when Major is MajorOther
	Project      string `json:"project"`
	Acknowledged bool   `json:"acknowledged"`
	Signature    string `json:"signature"`           // PNG data URL, empty when absent
	Timestamp    string `json:"timestamp,omitempty"` // ISO-8601, filled by the relay when empty
}

// Field names a FormRecord field. Values match the JSON keys.
type Field string

const (
	FieldStudentName  Field = "studentName"
	FieldStudentID    Field = "studentId"
	FieldMajor        Field = "major"
	FieldOtherMajor   Field = "otherMajor"
	FieldProject      Field = "project"
	FieldAcknowledged Field = "acknowledged"
	FieldSignature    Field = "signature"
)

// Fields lists every form field in validation order
var Fields = []Field{
	FieldStudentName,
	FieldStudentID,
	FieldMajor,
	FieldOtherMajor,
	FieldProject,
	FieldAcknowledged,
	FieldSignature,
}

// MajorOther is the sentinel major that makes OtherMajor required
const MajorOther = "Other"

// Majors is the fixed list offered by the form
var Majors = []string{
	"Chemistry",
	"Mathematics",
	"Biology",
	"Environmental Science",
	MajorOther,
}

// IsListedMajor reports whether m is one of Majors
func IsListedMajor(m string) bool {
	for _, major := range Majors {
		if major == m {
			return true
		}
	}
	return false
}

// AcknowledgementText is shown next to the acknowledgement checkbox
const AcknowledgementText = "I acknowledge that by participating in this hackathon, I am representing Sofia University. " +
	"I understand and agree that any work, projects, prototypes, research, or intellectual property produced during " +
	"this hackathon may be used by Sofia University for additional research, funding applications, publications, " +
	"promotional materials, or other university-related purposes. I confirm that all information provided is " +
	"accurate and that I am a currently enrolled student at Sofia University."

// SubmissionOutcome is the state of a form's current submission attempt
type SubmissionOutcome string

const (
	OutcomeIdle     SubmissionOutcome = "idle"
	OutcomeInFlight SubmissionOutcome = "in-flight"
	OutcomeSuccess  SubmissionOutcome = "success"
	OutcomeFailure  SubmissionOutcome = "failure"
)

// FailureMessage is the only failure text shown to the participant
const FailureMessage = "Something went wrong. Please try again."
