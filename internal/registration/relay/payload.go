package relay

import (
	"time"

	"github.com/sofia-hackathon/registration/internal/registration/domain"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Payload is the body shape the external endpoint expects
type Payload struct {
	StudentName  string `json:"studentName"`
	StudentID    string `json:"studentId"`
	Major        string `json:"major"`
	OtherMajor   string `json:"otherMajor"`
	Project      string `json:"project"`
	Acknowledged string `json:"acknowledged"`
	Signature    string `json:"signature"`
	Timestamp    string `json:"timestamp"`
}

// NewPayload reshapes rec for the external endpoint. now stamps records that carry no timestamp.
func NewPayload(rec domain.FormRecord, now time.Time) Payload {
	ts := rec.Timestamp
	if ts == "" {
		ts = now.UTC().Format(TimestampLayout)
	}

	return Payload{
		StudentName:  rec.StudentName,
		StudentID:    rec.StudentID,
		Major:        rec.Major,
		OtherMajor:   rec.OtherMajor,
		Project:      rec.Project,
		Acknowledged: yesNo(rec.Acknowledged),
		Signature:    rec.Signature,
		Timestamp:    ts,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
