package form

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/halcyon-studio/landing/internal/analytics"
	"github.com/halcyon-studio/landing/internal/validate"
)

// User-facing copy for the transient banners.
const (
	successCopy = "Thanks! Your message has been sent."
	timeoutCopy = "Request timed out. Please try again."
	failureCopy = "Your message could not be sent. Please try again."
)

// Controller drives one form through its lifecycle. It must only be
// used from the host event loop; the single asynchronous step (the
// Attempt) runs elsewhere and reports back through Finish.
type Controller struct {
	endpoint  string
	timeout   time.Duration
	submitter Submitter
	presenter Presenter
	emitter   *analytics.Emitter
	logger    *log.Logger
	state     State
}

// NewController wires the form's collaborators together. endpoint is
// the form's declared target URL; timeout bounds each attempt.
func NewController(endpoint string, timeout time.Duration, sub Submitter, pres Presenter, em *analytics.Emitter, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		endpoint:  endpoint,
		timeout:   timeout,
		submitter: sub,
		presenter: pres,
		emitter:   em,
		logger:    logger,
		state:     StateIdle,
	}
}

// State reports the current lifecycle position.
func (c *Controller) State() State { return c.state }

// Attempt is one armed submission: all fields validated, inputs
// disabled, start event emitted. Do performs the single bounded
// network call.
type Attempt struct {
	endpoint  string
	timeout   time.Duration
	values    map[string][]string
	submitter Submitter
}

// Do runs the network attempt. The deadline context is the
// cancellation token: when the timeout elapses the in-flight request
// is cancelled and the error classifies as a timeout. Exactly one
// attempt is made; there is no retry.
func (a *Attempt) Do() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	return a.submitter.Submit(ctx, a.endpoint, a.values)
}

// BeginSubmit validates every field and, if all pass, arms a
// submission. On any invalid field it shows per-field errors, focuses
// the first invalid one, emits one validation-error event, and returns
// nil with the controller back at Idle. While an attempt is in flight
// BeginSubmit returns nil without side effects (the disabled inputs
// make this unreachable from the UI; the guard keeps the one-inflight
// invariant under direct calls too).
func (c *Controller) BeginSubmit(fields []Field) *Attempt {
	if c.state != StateIdle {
		c.logger.Printf("form: submit ignored in state %s", c.state)
		return nil
	}
	c.state = StateValidating

	var failing []string
	firstInvalid := ""
	for _, f := range fields {
		res := validate.Validate(f.Spec, f.Value)
		if res.Valid {
			c.presenter.ClearFieldError(f.Spec.Name)
			continue
		}
		c.presenter.SetFieldError(f.Spec.Name, validate.Message(res.Key))
		failing = append(failing, f.Spec.Name)
		if firstInvalid == "" {
			firstInvalid = f.Spec.Name
		}
	}

	if len(failing) > 0 {
		c.presenter.FocusField(firstInvalid)
		c.emitter.Emit("form_validation_error", map[string]any{
			"fields": failing,
			"count":  len(failing),
		})
		c.state = StateIdle
		return nil
	}

	c.state = StateSubmitting
	c.presenter.SetBusy(true)
	c.emitter.Emit("form_submit_start", map[string]any{
		"endpoint": c.endpoint,
	})
	return &Attempt{
		endpoint:  c.endpoint,
		timeout:   c.timeout,
		values:    Values(fields),
		submitter: c.submitter,
	}
}

// Finish consumes the attempt's result and settles the UI: re-enable
// inputs either way; on success clear errors, reset values and show
// the success banner; on failure show the failure banner with
// timeout-specific copy when the deadline elapsed. Returns the
// terminal state of the attempt; the controller itself parks back at
// Idle, ready for the next submit.
func (c *Controller) Finish(err error) State {
	if c.state != StateSubmitting {
		c.logger.Printf("form: finish ignored in state %s", c.state)
		return c.state
	}
	c.presenter.SetBusy(false)
	c.state = StateIdle

	if err == nil {
		c.presenter.ClearAllFieldErrors()
		c.presenter.ResetFields()
		c.presenter.ShowNotice(NoticeSuccess, successCopy)
		c.emitter.Emit("form_submit_success", nil)
		return StateSuccess
	}

	class := Classify(err)
	message := failureCopy
	if class == ClassTimeout {
		message = timeoutCopy
	}
	c.presenter.ShowNotice(NoticeError, message)
	attrs := map[string]any{"reason": class.String()}
	var se *SubmitError
	if errors.As(err, &se) && se.Status != 0 {
		attrs["status"] = se.Status
	}
	c.emitter.Emit("form_submit_error", attrs)
	c.logger.Printf("form: submit failed: %v", err)
	return StateFailed
}

// LiveValidate re-evaluates one field and updates only its error
// display. It never touches the submission state, so it can run while
// an attempt is in flight without interaction.
func (c *Controller) LiveValidate(f Field) validate.Result {
	res := validate.Validate(f.Spec, f.Value)
	if res.Valid {
		c.presenter.ClearFieldError(f.Spec.Name)
	} else {
		c.presenter.SetFieldError(f.Spec.Name, validate.Message(res.Key))
	}
	return res
}
