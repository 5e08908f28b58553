// Package abstractfactory shows the Abstract Factory pattern: one interface
// that creates a whole family of related products, so a client never mixes a
// Windows button with a Mac checkbox.
//
// Pros:
//   - Products created together always belong to the same theme.
//   - Clients work against interfaces; the concrete types stay inside the factories.
//   - A new family is one new factory plus its products.
//
// Cons:
//   - Many small types, and the structure grows with every family.
//   - The abstract factory and every concrete factory must be written up front.
//   - Adding a new product kind touches every factory.
//
// Roles:
//   - Abstract factory: GUIFactory, the set of creation methods.
//   - Concrete factory: WindowFactory, MacFactory.
//   - Abstract product: Button, Checkbox.
//   - Concrete product: WindowButton, MacCheckbox, ...
//   - Client: Render, which only ever talks to the interfaces.
package abstractfactory

import (
	"fmt"
	"io"
)

// GUIFactory creates a matched button+checkbox pair.
// It has no default implementation; each platform implements every method.
type GUIFactory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

// Button is the abstract button product.
type Button interface {
	Click() string
}

// Checkbox is the abstract checkbox product.
type Checkbox interface {
	Check() string
}

// ── Concrete factories ───────────────────────────────────────────────────────

// WindowFactory builds the Windows family.
type WindowFactory struct{}

// CreateButton returns a WindowButton.
func (WindowFactory) CreateButton() Button { return WindowButton{} }

// CreateCheckbox returns a WindowCheckbox.
func (WindowFactory) CreateCheckbox() Checkbox { return WindowCheckbox{} }

// MacFactory builds the Mac family.
type MacFactory struct{}

// CreateButton returns a MacButton.
func (MacFactory) CreateButton() Button { return MacButton{} }

// CreateCheckbox returns a MacCheckbox.
func (MacFactory) CreateCheckbox() Checkbox { return MacCheckbox{} }

// ── Concrete products ────────────────────────────────────────────────────────

// WindowButton is the Windows button.
type WindowButton struct{}

// Click reports a Windows button click.
func (WindowButton) Click() string { return "윈도우 버튼 클릭" }

// MacButton is the Mac button.
type MacButton struct{}

// Click reports a Mac button click.
func (MacButton) Click() string { return "맥 버튼 클릭" }

// WindowCheckbox is the Windows checkbox.
type WindowCheckbox struct{}

// Check reports a Windows checkbox click.
func (WindowCheckbox) Check() string { return "윈도우 체크박스 클릭" }

// MacCheckbox is the Mac checkbox.
type MacCheckbox struct{}

// Check reports a Mac checkbox click.
func (MacCheckbox) Check() string { return "맥 체크박스 클릭" }

// Render is the client: it accepts any factory, builds both products and
// prints what they do. It never names a concrete type.
func Render(w io.Writer, factory GUIFactory) {
	button := factory.CreateButton()
	checkbox := factory.CreateCheckbox()

	fmt.Fprintln(w, button.Click())
	fmt.Fprintln(w, checkbox.Check())
}

// Demo runs the client against both platforms.
func Demo(w io.Writer) {
	Render(w, WindowFactory{})
	Render(w, MacFactory{})
}
