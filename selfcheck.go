package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/halcyon-studio/landing/internal/config"
	"github.com/halcyon-studio/landing/internal/form"
	"github.com/halcyon-studio/landing/internal/validate"
)

// runSelfCheck executes a non-TUI pass over the interaction layer: the
// validation rules, the gate lifecycle against a synthetic viewport,
// and a full form submission round-trip against a stub endpoint. It
// prints a parseable status line, so a broken install is caught before
// anything renders.
func runSelfCheck(w io.Writer) error {
	started := time.Now()
	logger := log.New(io.Discard, "", 0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sub := &selfCheckSubmitter{}
	s := newSession(cfg, nil, sub, logger)
	s.viewWidth, s.viewHeight = 80, 24

	// Validation rules answer the obvious cases.
	emailSpec := validate.FieldSpec{Name: "email", Kind: validate.KindEmail, Required: true}
	if res := validate.Validate(emailSpec, "someone@example.com"); !res.Valid {
		return fmt.Errorf("valid email rejected: %v", res.Key)
	}
	if res := validate.Validate(emailSpec, "nope"); res.Valid {
		return fmt.Errorf("invalid email accepted")
	}

	// Scrolling the full document must fire each tracking gate exactly
	// once and load the lazy slot.
	for top := 0; top <= s.doc.Height(); top++ {
		s.scan(top)
	}
	for _, g := range s.gates {
		if got := g.Phase(); got.String() != "fired" {
			return fmt.Errorf("gate %s phase = %s, want fired", g.Target(), got)
		}
	}
	if !s.doc.Section(sectionGallery).Lazy.Loaded() {
		return fmt.Errorf("lazy gallery content not loaded")
	}

	// A valid submission round-trip lands on the success banner.
	fields := []form.Field{
		{Spec: validate.FieldSpec{Name: "name", Kind: validate.KindName, Required: true}, Value: "Self Check"},
		{Spec: emailSpec, Value: "check@example.com"},
		{Spec: validate.FieldSpec{Name: "phone", Kind: validate.KindPhone}, Value: ""},
		{Spec: validate.FieldSpec{Name: "message", Kind: validate.KindMessage, Required: true}, Value: "Startup check message body."},
	}
	attempt := s.controller.BeginSubmit(fields)
	if attempt == nil {
		return fmt.Errorf("valid form rejected at validation")
	}
	if outcome := s.controller.Finish(attempt.Do()); outcome.String() != "success" {
		return fmt.Errorf("submission outcome = %s, want success", outcome)
	}
	if sub.calls != 1 {
		return fmt.Errorf("submitter calls = %d, want 1", sub.calls)
	}

	// Every lifecycle event must have landed on the queue, in order.
	want := []string{"section_view", "section_view", "image_load", "form_submit_start", "form_submit_success"}
	events := s.queue.Events()
	if len(events) != len(want) {
		return fmt.Errorf("captured %d events, want %d", len(events), len(want))
	}
	for i, name := range want {
		if events[i].Name != name {
			return fmt.Errorf("event[%d] = %s, want %s", i, events[i].Name, name)
		}
	}

	fmt.Fprintf(w, "selfcheck_status_err=false gates=%d events=%d elapsed=%s\n",
		len(s.gates), len(events), time.Since(started).Round(time.Millisecond))
	return nil
}

// selfCheckSubmitter accepts any submission without a network.
type selfCheckSubmitter struct {
	calls int
}

func (s *selfCheckSubmitter) Submit(context.Context, string, url.Values) error {
	s.calls++
	return nil
}
