package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyon-studio/landing/internal/form"
	"github.com/halcyon-studio/landing/internal/validate"
)

// contactFieldSpecs declares the form's fields once; specs never
// change after this.
func contactFieldSpecs() []validate.FieldSpec {
	return []validate.FieldSpec{
		{Name: "name", Kind: validate.KindName, Required: true},
		{Name: "email", Kind: validate.KindEmail, Required: true},
		{Name: "phone", Kind: validate.KindPhone, Required: false},
		{Name: "message", Kind: validate.KindMessage, Required: true},
	}
}

var fieldPrompts = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"phone":   "Phone (optional)",
	"message": "Message",
}

var fieldPlaceholders = map[string]string{
	"name":    "Your name",
	"email":   "you@example.com",
	"phone":   "+61 ...",
	"message": "Tell us what you're looking for",
}

// notice is one transient banner under the form. seq lets an expiry
// tick target exactly the banner it was scheduled for.
type notice struct {
	kind form.NoticeKind
	text string
	seq  int
}

// contactForm owns the form's widgets and display state, and is the
// form.Presenter the controller mutates. It lives behind a pointer so
// controller writes survive Bubble Tea's value-copied model.
type contactForm struct {
	specs  []validate.FieldSpec
	inputs []textinput.Model
	errors map[string]string
	busy   bool
	banner *notice
	seq    int

	// focusReq is set by FocusField and consumed by the update loop,
	// which owns actual widget focus.
	focusReq string
}

func newContactForm(specs []validate.FieldSpec) *contactForm {
	f := &contactForm{
		specs:  specs,
		errors: map[string]string{},
	}
	for _, spec := range specs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = fieldPlaceholders[spec.Name]
		in.CharLimit = 256
		f.inputs = append(f.inputs, in)
	}
	return f
}

// fieldIndex maps a field name to its widget position, -1 if unknown.
func (f *contactForm) fieldIndex(name string) int {
	for i, spec := range f.specs {
		if spec.Name == name {
			return i
		}
	}
	return -1
}

// fields snapshots the current values for validation and submission.
func (f *contactForm) fields() []form.Field {
	out := make([]form.Field, len(f.specs))
	for i, spec := range f.specs {
		out[i] = form.Field{Spec: spec, Value: f.inputs[i].Value()}
	}
	return out
}

// field returns a single field's spec plus current value.
func (f *contactForm) field(name string) (form.Field, bool) {
	i := f.fieldIndex(name)
	if i < 0 {
		return form.Field{}, false
	}
	return form.Field{Spec: f.specs[i], Value: f.inputs[i].Value()}, true
}

// update routes a key to the focused widget. Returns the field name
// and whether its text changed, so the caller can schedule debounced
// validation. Disabled (busy) inputs ignore everything.
func (f *contactForm) update(idx int, msg tea.Msg) (string, bool, tea.Cmd) {
	if f.busy || idx < 0 || idx >= len(f.inputs) {
		return "", false, nil
	}
	before := f.inputs[idx].Value()
	var cmd tea.Cmd
	f.inputs[idx], cmd = f.inputs[idx].Update(msg)
	return f.specs[idx].Name, f.inputs[idx].Value() != before, cmd
}

func (f *contactForm) focusInput(idx int) tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if idx >= 0 && idx < len(f.inputs) && !f.busy {
		return f.inputs[idx].Focus()
	}
	return nil
}

func (f *contactForm) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// takeFocusReq returns and clears a pending focus request.
func (f *contactForm) takeFocusReq() string {
	req := f.focusReq
	f.focusReq = ""
	return req
}

func (f *contactForm) bannerSeq() int {
	if f.banner == nil {
		return 0
	}
	return f.banner.seq
}

// expireBanner drops the banner if it is still the one seq points at.
func (f *contactForm) expireBanner(seq int) {
	if f.banner != nil && f.banner.seq == seq {
		f.banner = nil
	}
}

// ---------------------------------------------------------------------------
// form.Presenter
// ---------------------------------------------------------------------------

func (f *contactForm) SetFieldError(name, message string) {
	f.errors[name] = message
}

func (f *contactForm) ClearFieldError(name string) {
	delete(f.errors, name)
}

func (f *contactForm) ClearAllFieldErrors() {
	f.errors = map[string]string{}
}

// SetBusy disables or re-enables every input and the submit control.
// Disabling also blurs, so no input or blur events can originate from
// the form while a submission is in flight.
func (f *contactForm) SetBusy(busy bool) {
	f.busy = busy
	if busy {
		f.blurAll()
	}
}

func (f *contactForm) FocusField(name string) {
	f.focusReq = name
}

func (f *contactForm) ResetFields() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
}

func (f *contactForm) ShowNotice(kind form.NoticeKind, message string) {
	f.seq++
	f.banner = &notice{kind: kind, text: message, seq: f.seq}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// lines renders the form block: prompt, input, optional error per
// field, then the submit control and any banner. Plain strings; the
// section styling happens at the page level.
func (f *contactForm) lines(width int) []string {
	var out []string
	for i, spec := range f.specs {
		prompt := fieldPrompts[spec.Name]
		if spec.Required {
			prompt += " *"
		}
		out = append(out, formLabelStyle.Render(prompt))

		view := f.inputs[i].View()
		if f.busy {
			view = disabledStyle.Render(f.inputs[i].Value())
		}
		out = append(out, "  "+view)

		if msg, ok := f.errors[spec.Name]; ok {
			out = append(out, "  "+fieldErrorStyle.Render(msg))
		}
	}

	submit := "[ Send message ]"
	switch {
	case f.busy:
		submit = disabledStyle.Render("[ Sending… ]")
	default:
		submit = submitStyle.Render(submit)
	}
	out = append(out, "", submit)

	if f.banner != nil {
		style := noticeSuccessStyle
		if f.banner.kind == form.NoticeError {
			style = noticeErrorStyle
		}
		out = append(out, "", style.Render(" "+f.banner.text+" "))
	}

	for i, line := range out {
		out[i] = truncate(line, width)
	}
	return out
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// padRight pads s with spaces to width, truncating when longer.
func padRight(s string, width int) string {
	if len([]rune(s)) >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}
