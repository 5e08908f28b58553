// Package factorymethod shows the Factory Method pattern: a creator leaves
// the choice of concrete product to its variants.
//
// Pros:
//   - New products extend the code without changing existing code.
//   - Creation code lives in one place and variants can override it.
//   - Shared workflow is written once in the creator.
//   - Clients depend on interfaces, not on concrete product types.
//
// Cons:
//   - More types and interfaces to follow.
//   - Every new product needs its own type and creator.
//
// Roles:
//   - Product: Button.
//   - Concrete product: WindowButton, MacButton.
//   - Creator: Dialog, which declares the workflow (Render).
//   - Concrete creator: WindowDialog, MacDialog, which implement the hook.
//
// Go has no abstract classes, so the creator is split in two: Dialog carries
// the template method (Render) and delegates the one varying step, button
// creation, to a ButtonCreator. Concrete creators implement only that hook.
package factorymethod

import (
	"fmt"
	"io"
)

// Button is the product.
type Button interface {
	Render(w io.Writer)
	OnClick(w io.Writer)
}

// WindowButton is the Windows product.
type WindowButton struct{}

// Render prints the Windows render line.
func (WindowButton) Render(w io.Writer) { fmt.Fprintln(w, "윈도우 버튼 렌더링") }

// OnClick prints the Windows click line.
func (WindowButton) OnClick(w io.Writer) { fmt.Fprintln(w, "윈도우 버튼 클릭") }

// MacButton is the Mac product.
type MacButton struct{}

// Render prints the Mac render line.
func (MacButton) Render(w io.Writer) { fmt.Fprintln(w, "맥 버튼 렌더링") }

// OnClick prints the Mac click line.
func (MacButton) OnClick(w io.Writer) { fmt.Fprintln(w, "맥 버튼 클릭") }

// ButtonCreator is the factory method hook.
type ButtonCreator interface {
	CreateButton() Button
}

// WindowDialog is the Windows concrete creator.
type WindowDialog struct{}

// CreateButton returns a WindowButton.
func (WindowDialog) CreateButton() Button { return WindowButton{} }

// MacDialog is the Mac concrete creator.
type MacDialog struct{}

// CreateButton returns a MacButton.
func (MacDialog) CreateButton() Button { return MacButton{} }

// Dialog is the creator. Render is defined once here and is the same for
// every platform; only the creator it wraps changes.
type Dialog struct {
	creator ButtonCreator
}

// NewDialog wires a dialog to its creation hook.
func NewDialog(c ButtonCreator) *Dialog {
	return &Dialog{creator: c}
}

// NewWindowDialog returns a dialog that renders Windows buttons.
func NewWindowDialog() *Dialog { return NewDialog(WindowDialog{}) }

// NewMacDialog returns a dialog that renders Mac buttons.
func NewMacDialog() *Dialog { return NewDialog(MacDialog{}) }

// Render creates a button through the hook and renders it.
func (d *Dialog) Render(w io.Writer) {
	button := d.creator.CreateButton()
	button.Render(w)
}

// render is the client; it depends on Dialog only.
func render(w io.Writer, d *Dialog) {
	d.Render(w)
}

// Demo renders the Windows dialog, then the Mac dialog.
func Demo(w io.Writer) {
	render(w, NewWindowDialog())
	render(w, NewMacDialog())
}
