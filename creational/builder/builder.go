// Package builder shows the Builder pattern: construction steps live on a
// builder, a director decides their order, and the same recipe yields a
// different product depending on which builder it is handed.
//
// Pros:
//   - Construction logic is hidden; the client just asks for a result.
//   - The same process can produce different representations.
//   - Another representation is one more builder type.
//   - The director owns the step order, so clients pick a recipe by name.
//
// Cons:
//   - Several cooperating types make the intent harder to see at first.
//   - Step-by-step assembly costs some speed and memory.
//
// Roles:
//   - Builder: the common build-step interface (GUIBuilder).
//   - Concrete builder: implements the steps and holds the result
//     (WindowGUIBuilder, MacGUIBuilder).
//   - Product: what gets built (GUI).
//   - Director: runs the steps in a fixed order. Optional (Director).
//   - Client: picks a builder and a recipe (Demo).
package builder

import (
	"fmt"
	"io"
)

// GUI is the product: an ordered list of component labels.
type GUI struct {
	components []string
}

// AddComponent appends one label.
func (g *GUI) AddComponent(component string) {
	g.components = append(g.components, component)
}

// Components returns a copy so callers cannot rewrite the build history.
func (g *GUI) Components() []string {
	out := make([]string, len(g.components))
	copy(out, g.components)
	return out
}

// Display prints the components as a numbered list.
func (g *GUI) Display(w io.Writer) {
	fmt.Fprintln(w, "GUI 구성 요소")
	for i, c := range g.components {
		fmt.Fprintf(w, "%d. %s\n", i+1, c)
	}
}

// GUIBuilder is the common builder interface. Build steps return the builder
// itself so calls can be chained: b.BuildButton().BuildCheckbox().
type GUIBuilder interface {
	BuildButton() GUIBuilder
	BuildCheckbox() GUIBuilder
	GUI() *GUI
}

// guiBuilder holds the product in progress; concrete builders embed it.
type guiBuilder struct {
	gui *GUI
}

// GUI returns the product built so far.
func (b *guiBuilder) GUI() *GUI { return b.gui }

// ── Concrete builders ────────────────────────────────────────────────────────

// WindowGUIBuilder adds Windows-labelled components.
type WindowGUIBuilder struct{ guiBuilder }

// NewWindowGUIBuilder starts with an empty GUI.
func NewWindowGUIBuilder() *WindowGUIBuilder {
	return &WindowGUIBuilder{guiBuilder{gui: &GUI{}}}
}

// BuildButton adds a Windows button.
func (b *WindowGUIBuilder) BuildButton() GUIBuilder {
	b.gui.AddComponent("윈도우 버튼")
	return b
}

// BuildCheckbox adds a Windows checkbox.
func (b *WindowGUIBuilder) BuildCheckbox() GUIBuilder {
	b.gui.AddComponent("윈도우 체크박스")
	return b
}

// MacGUIBuilder adds Mac-labelled components.
type MacGUIBuilder struct{ guiBuilder }

// NewMacGUIBuilder starts with an empty GUI.
func NewMacGUIBuilder() *MacGUIBuilder {
	return &MacGUIBuilder{guiBuilder{gui: &GUI{}}}
}

// BuildButton adds a Mac button.
func (b *MacGUIBuilder) BuildButton() GUIBuilder {
	b.gui.AddComponent("맥 버튼")
	return b
}

// BuildCheckbox adds a Mac checkbox.
func (b *MacGUIBuilder) BuildCheckbox() GUIBuilder {
	b.gui.AddComponent("맥 체크박스")
	return b
}

// Director owns the construction recipes. The builder it drives can be
// swapped at any time; already-built products are not touched.
type Director struct {
	builder GUIBuilder
}

// NewDirector returns a director driving b.
func NewDirector(b GUIBuilder) *Director {
	return &Director{builder: b}
}

// SetBuilder points the director at another builder.
func (d *Director) SetBuilder(b GUIBuilder) {
	d.builder = b
}

// BuildBasicGUI: button, checkbox.
func (d *Director) BuildBasicGUI() {
	d.builder.BuildButton().BuildCheckbox()
}

// BuildAdvancedGUI: button, checkbox, button.
func (d *Director) BuildAdvancedGUI() {
	d.builder.BuildButton().BuildCheckbox().BuildButton()
}

// Demo builds a basic GUI with the Windows builder, then swaps in the Mac
// builder and runs the same recipe.
func Demo(w io.Writer) {
	windows := NewWindowGUIBuilder()
	director := NewDirector(windows)
	director.BuildBasicGUI()
	windows.GUI().Display(w)

	mac := NewMacGUIBuilder()
	director.SetBuilder(mac)
	director.BuildBasicGUI()
	mac.GUI().Display(w)
}
