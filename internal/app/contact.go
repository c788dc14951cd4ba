package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stayinubud/internal/domain"
)

// ErrInvalid marks validation failures so the HTTP layer can tell a bad
// form apart from a store outage.
var ErrInvalid = errors.New("invalid input")

// ContactService persists contact inquiries. Unlike the booking lead
// path, a persistence failure here is surfaced to the caller so the user
// sees a retryable error.
type ContactService struct {
	store domain.Store
}

func NewContactService(s domain.Store) *ContactService {
	return &ContactService{store: s}
}

func (s *ContactService) Submit(ctx context.Context, inq domain.Inquiry) error {
	if err := validateInquiry(inq); err != nil {
		return err
	}
	if err := s.store.InsertInquiry(ctx, inq); err != nil {
		return fmt.Errorf("persist inquiry: %w", err)
	}
	return nil
}

func validateInquiry(inq domain.Inquiry) error {
	switch {
	case strings.TrimSpace(inq.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalid)
	case strings.TrimSpace(inq.Email) == "" || !strings.Contains(inq.Email, "@"):
		return fmt.Errorf("%w: a valid email is required", ErrInvalid)
	case strings.TrimSpace(inq.Message) == "":
		return fmt.Errorf("%w: message is required", ErrInvalid)
	}
	return nil
}

type ContactStatus int

const (
	ContactIdle ContactStatus = iota
	ContactSubmitting
	ContactSuccess
	ContactError
)

func (s ContactStatus) String() string {
	switch s {
	case ContactSubmitting:
		return "submitting"
	case ContactSuccess:
		return "success"
	case ContactError:
		return "error"
	default:
		return "idle"
	}
}

// ContactForm is the stateful form flow: idle -> submitting -> success or
// error. Error keeps the entered fields so resubmission works; success
// clears them. One instance per view, never shared.
type ContactForm struct {
	Name    string
	Email   string
	Message string

	status ContactStatus
}

func (f *ContactForm) Status() ContactStatus { return f.status }

func (f *ContactForm) Submit(ctx context.Context, svc *ContactService) error {
	f.status = ContactSubmitting
	err := svc.Submit(ctx, domain.Inquiry{Name: f.Name, Email: f.Email, Message: f.Message})
	if err != nil {
		f.status = ContactError
		return err
	}
	f.status = ContactSuccess
	f.clear()
	return nil
}

// Reset returns a successful (or errored) form to idle with cleared fields.
func (f *ContactForm) Reset() {
	f.status = ContactIdle
	f.clear()
}

func (f *ContactForm) clear() {
	f.Name, f.Email, f.Message = "", "", ""
}
