package pages

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

// Prompter asks the user for a line of text
type Prompter interface {
	Prompt(title, label, current string) (string, error)
}

// ZenityPrompter uses the native entry dialog. It blocks until the dialog closes.
type ZenityPrompter struct{}

func (ZenityPrompter) Prompt(title, label, current string) (string, error) {
	return zenity.Entry(label, zenity.Title(title), zenity.EntryText(current))
}

type formField struct {
	key   string
	label string
	box   *ui.Button
}

// Contact shows the ways to get in touch and a form filled in through dialogs.
// Submitting is simulated; nothing leaves the machine.
type Contact struct {
	deps   Deps
	prompt Prompter

	form      Form
	errs      FieldErrors
	fields    []formField
	submitBtn *ui.Button
	notice    float64 // seconds the success notice has left
	lastErr   error
}

func NewContact(d Deps, p Prompter) *Contact {
	if p == nil {
		p = ZenityPrompter{}
	}
	c := &Contact{deps: d, prompt: p, errs: FieldErrors{}}

	v := d.View
	x := v.Min.X + v.Dx()/2 + 12
	w := v.Dx()/2 - 60
	y := v.Min.Y + 110
	for _, f := range []struct{ key, label string }{
		{FieldName, "Name"},
		{FieldEmail, "Email"},
		{FieldMessage, "Message"},
	} {
		c.fields = append(c.fields, formField{key: f.key, label: f.label, box: ui.NewButton("", x, y, w, 32)})
		y += 32 + 2*ui.LineHeight + 8
	}
	c.submitBtn = ui.NewButton("Send Message", x, y, config.ButtonWidth+20, config.ButtonHeight)
	return c
}

func (c *Contact) Form() Form          { return c.form }
func (c *Contact) Errors() FieldErrors { return c.errs }
func (c *Contact) NoticeVisible() bool { return c.notice > 0 }

func (c *Contact) value(key string) *string {
	switch key {
	case FieldName:
		return &c.form.Name
	case FieldEmail:
		return &c.form.Email
	default:
		return &c.form.Message
	}
}

// Edit prompts for a new value of one field. Cancelling keeps the old value.
func (c *Contact) Edit(key, label string) {
	v := c.value(key)
	s, err := c.prompt.Prompt("Contact Us", label, *v)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			c.lastErr = err
			log.Printf("[Contact] Prompt failed: %v", err)
		}
		return
	}
	*v = s
	delete(c.errs, key)
}

// Submit validates the form. A valid form is cleared and a notice shown for
// five seconds.
func (c *Contact) Submit() bool {
	c.errs = c.form.Validate()
	if len(c.errs) > 0 {
		return false
	}
	log.Printf("[Contact] Message from %s <%s> (%d chars)", c.form.Name, c.form.Email, len(c.form.Message))
	c.form = Form{}
	c.notice = config.OverlayDuration.Seconds()
	return true
}

func (c *Contact) Update(dt float64, in ui.Input) {
	if c.notice > 0 {
		c.notice -= dt
	}
	for _, f := range c.fields {
		if f.box.Update(in) {
			c.Edit(f.key, f.label)
		}
	}
	if c.submitBtn.Update(in) {
		c.Submit()
	}
}

func (c *Contact) Draw(screen *ebiten.Image) {
	v := c.deps.View
	txt := c.deps.Copy.Contact
	drawHeader(screen, v, txt.Header)

	lx, ly := v.Min.X+48, v.Min.Y+90
	lw := v.Dx()/2 - 72
	ui.DrawPanel(screen, lx, ly, lw, v.Max.Y-ly-20)
	printAt(screen, "Get in Touch", lx+16, ly+16)
	y := ui.DrawLines(screen, ui.Wrap(txt.Intro, (lw-32)/ui.CharWidth), lx+16, ly+16+ui.LineHeight+8) + 12
	for _, m := range txt.Methods {
		printAt(screen, m.Title, lx+16, y)
		printAt(screen, "  "+m.Value, lx+16, y+ui.LineHeight)
		y += 2*ui.LineHeight + 10
	}

	for _, f := range c.fields {
		b := f.box
		printAt(screen, f.label, b.X, b.Y-ui.LineHeight-2)
		border := ui.Border
		if b.Hovered() {
			border = ui.Cyan
		}
		if _, bad := c.errs[f.key]; bad {
			border = ui.Danger
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), ui.Panel, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, border, false)

		text := *c.value(f.key)
		if text == "" {
			text = "(click to edit)"
		}
		if maxChars := (b.W - 16) / ui.CharWidth; len([]rune(text)) > maxChars {
			text = string([]rune(text)[:maxChars-3]) + "..."
		}
		printAt(screen, text, b.X+8, b.Y+(b.H-ui.LineHeight)/2)
		if msg, bad := c.errs[f.key]; bad {
			printAt(screen, msg, b.X, b.Y+b.H+2)
		}
	}
	c.submitBtn.Draw(screen)

	if c.NoticeVisible() {
		printAt(screen, "Thank you! Your message has been received.", c.submitBtn.X, c.submitBtn.Y+c.submitBtn.H+8)
	}
	if c.lastErr != nil {
		printAt(screen, "Dialog error: "+c.lastErr.Error(), c.submitBtn.X, c.submitBtn.Y+c.submitBtn.H+8+ui.LineHeight)
	}
}
