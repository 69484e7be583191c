// Package form holds the client-side state of one registration form instance.
package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/sofia-hackathon/registration/internal/registration/domain"
	"github.com/sofia-hackathon/registration/internal/registration/validation"
)

// Submitter sends a validated record to the relay
type Submitter interface {
	Submit(ctx context.Context, rec domain.FormRecord) error
}

// Form tracks field values, field errors and the outcome of the current submission.
// At most one submission is in flight at a time.
type Form struct {
	mu      sync.Mutex
	record  domain.FormRecord
	errors  validation.Errors
	outcome domain.SubmissionOutcome
}

func New() *Form {
	return &Form{outcome: domain.OutcomeIdle}
}

// Set updates a text field (name, student ID, major, other major, project)
func (f *Form) Set(field domain.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case domain.FieldStudentName:
		f.record.StudentName = value
	case domain.FieldStudentID:
		f.record.StudentID = value
	case domain.FieldMajor:
		f.record.Major = value
	case domain.FieldOtherMajor:
		f.record.OtherMajor = value
	case domain.FieldProject:
		f.record.Project = value
	case domain.FieldAcknowledged, domain.FieldSignature:
		return fmt.Errorf("%w: %s is not a text field", domain.ErrInvalidFieldVal, field)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownField, field)
	}
	f.clearResolved()
	return nil
}

func (f *Form) SetAcknowledged(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record.Acknowledged = v
	f.clearResolved()
}

// SetSignature stores the signature data URL; "" marks the signature absent
func (f *Form) SetSignature(dataURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record.Signature = dataURL
	f.clearResolved()
}

// clearResolved drops errors of fields that are valid again
func (f *Form) clearResolved() {
	for _, fe := range f.errors {
		if _, ok := validation.CheckField(f.record, fe.Field); ok {
			f.errors = f.errors.Without(fe.Field)
		}
	}
}

func (f *Form) Record() domain.FormRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

func (f *Form) Errors() validation.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append(validation.Errors(nil), f.errors...)
}

func (f *Form) Outcome() domain.SubmissionOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// CanSubmit is false while a submission is in flight
func (f *Form) CanSubmit() bool {
	return f.Outcome() != domain.OutcomeInFlight
}

// Message is the banner text for the current outcome
func (f *Form) Message() string {
	if f.Outcome() == domain.OutcomeFailure {
		return domain.FailureMessage
	}
	return ""
}

// Validate replaces the error set with every violation of the current record
func (f *Form) Validate() validation.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = validation.Validate(f.record)
	return append(validation.Errors(nil), f.errors...)
}

// Submit validates the record and, when it is complete, sends it once through s.
// Validation failures are returned as validation.Errors and never reach s.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	f.mu.Lock()
	if f.outcome == domain.OutcomeInFlight {
		f.mu.Unlock()
		return domain.ErrSubmitInFlight
	}
	f.errors = validation.Validate(f.record)
	if len(f.errors) > 0 {
		errs := append(validation.Errors(nil), f.errors...)
		f.mu.Unlock()
		return errs
	}
	rec := f.record
	f.outcome = domain.OutcomeInFlight
	f.mu.Unlock()

	err := s.Submit(ctx, rec)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.outcome = domain.OutcomeFailure
		return fmt.Errorf("%w: %w", domain.ErrSubmitFailed, err)
	}
	f.outcome = domain.OutcomeSuccess
	f.record = domain.FormRecord{}
	return nil
}
