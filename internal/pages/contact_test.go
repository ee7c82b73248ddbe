package pages

import (
	"errors"
	"testing"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/zen-garden/internal/ui"
)

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want FieldErrors
	}{
		{"valid", Form{"Ada", "ada@example.com", "Hello"}, FieldErrors{}},
		{"empty", Form{}, FieldErrors{
			FieldName:    "Name is required",
			FieldEmail:   "Email is required",
			FieldMessage: "Message is required",
		}},
		{"whitespace only", Form{"  ", "\t", "\n"}, FieldErrors{
			FieldName:    "Name is required",
			FieldEmail:   "Email is required",
			FieldMessage: "Message is required",
		}},
		{"no at", Form{"Ada", "ada.example.com", "Hi"}, FieldErrors{FieldEmail: "Email is invalid"}},
		{"no dot", Form{"Ada", "ada@example", "Hi"}, FieldErrors{FieldEmail: "Email is invalid"}},
		{"padded email", Form{"Ada", "  ada@example.com ", "Hi"}, FieldErrors{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Validate()
			if len(got) != len(tt.want) {
				t.Fatalf("Validate() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("error[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

type fakePrompter struct {
	answers map[string]string
	err     error
	asked   []string
}

func (p *fakePrompter) Prompt(title, label, current string) (string, error) {
	p.asked = append(p.asked, label)
	if p.err != nil {
		return "", p.err
	}
	return p.answers[label], nil
}

func TestContactEditAndSubmit(t *testing.T) {
	p := &fakePrompter{answers: map[string]string{
		"Name":    "Ada",
		"Email":   "ada@example.com",
		"Message": "Thank you for the garden.",
	}}
	c := NewContact(newTestDeps(t), p)

	if c.Submit() {
		t.Fatal("empty form should not submit")
	}
	if len(c.Errors()) != 3 {
		t.Fatalf("Errors() = %v, want three", c.Errors())
	}

	for _, f := range c.fields {
		click(c, f.box)
	}
	if len(p.asked) != 3 {
		t.Fatalf("prompted %d times, want 3", len(p.asked))
	}
	if len(c.Errors()) != 0 {
		t.Errorf("editing should clear field errors, got %v", c.Errors())
	}

	click(c, c.submitBtn)
	if c.Form() != (Form{}) {
		t.Errorf("form not cleared after submit: %+v", c.Form())
	}
	if !c.NoticeVisible() {
		t.Fatal("success notice should show")
	}
	c.Update(4.9, ui.Input{})
	if !c.NoticeVisible() {
		t.Error("notice hid before five seconds")
	}
	c.Update(0.2, ui.Input{})
	if c.NoticeVisible() {
		t.Error("notice still visible after five seconds")
	}
}

func TestContactCancelKeepsValue(t *testing.T) {
	p := &fakePrompter{answers: map[string]string{"Name": "Ada"}}
	c := NewContact(newTestDeps(t), p)
	c.Edit(FieldName, "Name")

	p.err = zenity.ErrCanceled
	c.Edit(FieldName, "Name")
	if c.Form().Name != "Ada" {
		t.Errorf("Name = %q after cancel, want Ada", c.Form().Name)
	}
	if c.lastErr != nil {
		t.Errorf("cancel recorded as error: %v", c.lastErr)
	}

	p.err = errors.New("no display")
	c.Edit(FieldName, "Name")
	if c.Form().Name != "Ada" || c.lastErr == nil {
		t.Error("dialog failure should keep the value and record the error")
	}
}
