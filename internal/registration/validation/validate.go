package validation

import (
	"strings"

	"github.com/sofia-hackathon/registration/internal/registration/domain"
)

// FieldError is a single violated constraint
type FieldError struct {
	Field   domain.Field `json:"field"`
	Message string       `json:"message"`
}

// Errors holds every violated constraint of a record, in field order
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, string(fe.Field)+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field has an error
func (e Errors) Has(field domain.Field) bool {
	_, ok := e.Get(field)
	return ok
}

// Get returns the message for field
func (e Errors) Get(field domain.Field) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Without returns a copy of e with field's error removed
func (e Errors) Without(field domain.Field) Errors {
	out := make(Errors, 0, len(e))
	for _, fe := range e {
		if fe.Field != field {
			out = append(out, fe)
		}
	}
	return out
}

// Map returns the errors keyed by field name
func (e Errors) Map() map[domain.Field]string {
	m := make(map[domain.Field]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

// Validate checks every required constraint of rec and returns all violations.
// A nil result means the record may be submitted.
func Validate(rec domain.FormRecord) Errors {
	var errs Errors
	for _, field := range domain.Fields {
		if msg, ok := CheckField(rec, field); !ok {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}
	return errs
}

// CheckField checks a single field of rec. It returns the error message and false
// when the field violates its constraint.
func CheckField(rec domain.FormRecord, field domain.Field) (string, bool) {
	switch field {
	case domain.FieldStudentName:
		if blank(rec.StudentName) {
			return "Name is required", false
		}
	case domain.FieldStudentID:
		if blank(rec.StudentID) {
			return "Student ID is required", false
		}
	case domain.FieldMajor:
		if rec.Major == "" {
			return "Please select your major", false
		}
	case domain.FieldOtherMajor:
		if rec.Major == domain.MajorOther && blank(rec.OtherMajor) {
			return "Please specify your major", false
		}
	case domain.FieldProject:
		if blank(rec.Project) {
			return "Project name/description is required", false
		}
	case domain.FieldAcknowledged:
		if !rec.Acknowledged {
			return "You must acknowledge the terms to participate", false
		}
	case domain.FieldSignature:
		if rec.Signature == "" {
			return "Signature is required", false
		}
	}
	return "", true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
