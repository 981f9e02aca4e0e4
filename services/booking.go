package services

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"Townplate/models"
	"Townplate/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Both sentinels carry their HTTP status so controllers can forward them to
// the global error middleware unchanged.
var (
	ErrBookingNotFound   = utils.NewCustomError(http.StatusNotFound, "Booking not found")
	ErrInvalidTransition = utils.NewCustomError(http.StatusConflict, "Transition not allowed in current state")
)

// FieldErrors maps a form field to its inline validation message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "booking details failed validation"
}

// BookingWorkflow is one short-lived confirmation flow instance. States only
// move forward: details -> confirming -> success. Closing is allowed from any
// state and discards everything; a reopened flow starts from scratch.
type BookingWorkflow struct {
	ID      string                `json:"id"`
	State   models.BookingState   `json:"state"`
	Request models.BookingRequest `json:"request"`
}

// BookingService owns the live workflow instances. Data never outlives the
// workflow: closing removes the instance, and opening always starts with an
// empty request, so no field from a previous session can leak through.
type BookingService struct {
	mu        sync.Mutex
	validate  *validator.Validate
	workflows map[string]*BookingWorkflow
	now       func() time.Time
}

// NewBookingService creates the workflow registry.
func NewBookingService() *BookingService {
	return &BookingService{
		validate:  validator.New(),
		workflows: make(map[string]*BookingWorkflow),
		now:       time.Now,
	}
}

// Open starts a fresh workflow in the details state for a service.
func (s *BookingService) Open(serviceRef string) BookingWorkflow {
	w := &BookingWorkflow{
		ID:    uuid.NewString(),
		State: models.BookingDetails,
		Request: models.BookingRequest{
			ServiceRef: serviceRef,
		},
	}
	s.mu.Lock()
	s.workflows[w.ID] = w
	s.mu.Unlock()
	return *w
}

// Get returns a copy of the workflow's current state and data.
func (s *BookingService) Get(id string) (BookingWorkflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workflows[id]
	if !ok {
		return BookingWorkflow{}, ErrBookingNotFound
	}
	return *w, nil
}

// Submit validates the collected details and, only if every constraint holds,
// moves the workflow from details to confirming. Any violation keeps the
// state unchanged and reports inline per-field errors. The confirmation
// signal itself arrives later via Confirm; the service never waits on wall
// clock. Like Get, the returned workflow is a copy detached from the live
// instance.
func (s *BookingService) Submit(id string, req models.BookingRequest) (BookingWorkflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workflows[id]
	if !ok {
		return BookingWorkflow{}, ErrBookingNotFound
	}
	if w.State != models.BookingDetails {
		return BookingWorkflow{}, ErrInvalidTransition
	}

	req.ServiceRef = w.Request.ServiceRef
	if errs := s.validateRequest(req); len(errs) > 0 {
		return BookingWorkflow{}, errs
	}

	w.Request = req
	w.State = models.BookingConfirming
	return *w, nil
}

// Confirm applies the external confirmation signal. Only legal while
// confirming; success is terminal until the workflow is reopened.
func (s *BookingService) Confirm(id string) (BookingWorkflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workflows[id]
	if !ok {
		return BookingWorkflow{}, ErrBookingNotFound
	}
	if w.State != models.BookingConfirming {
		return BookingWorkflow{}, ErrInvalidTransition
	}
	w.State = models.BookingSuccess
	return *w, nil
}

// Close discards the workflow and everything it collected. Permitted in any
// state and has no effect on catalog data.
func (s *BookingService) Close(id string) {
	s.mu.Lock()
	delete(s.workflows, id)
	s.mu.Unlock()
}

func (s *BookingService) validateRequest(req models.BookingRequest) FieldErrors {
	errs := FieldErrors{}

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Field() {
				case "Name":
					errs["name"] = "Name is required"
				case "Phone":
					errs["phone"] = "Phone is required"
				case "Date":
					errs["date"] = "Date is required"
				case "ServiceRef":
					errs["service_ref"] = "Service reference is required"
				}
			}
		} else {
			errs["request"] = err.Error()
		}
	}

	// The preferred date may be today but never in the past. Submitted dates
	// are bare calendar dates carried at midnight UTC, so today is the
	// server's local calendar day expressed the same way.
	if _, ok := errs["date"]; !ok {
		y, m, d := s.now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if req.Date.Before(today) {
			errs["date"] = "Date must not be in the past"
		}
	}

	return errs
}
