// Package catalog lists every pattern demo, together with its teaching notes,
// and knows how to run and present them. Each demo stays a closed program;
// the catalog only sequences them.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/marcodamonte/designpatterns/creational/abstractfactory"
	"github.com/marcodamonte/designpatterns/creational/builder"
	"github.com/marcodamonte/designpatterns/creational/factorymethod"
	"github.com/marcodamonte/designpatterns/creational/prototype"
	"github.com/marcodamonte/designpatterns/creational/singleton"
	"github.com/marcodamonte/designpatterns/structural/adapter"
)

// Family groups patterns the way the GoF book does.
type Family string

// The families present in the catalog.
const (
	Creational Family = "creational"
	Structural Family = "structural"
)

// ErrUnknownDemo is returned by Lookup for names not in the catalog.
var ErrUnknownDemo = errors.New("unknown demo")

// Role is one participant of a pattern and the type that plays it.
type Role struct {
	Name        string
	Description string
}

// Demo describes one runnable pattern demo and its teaching notes.
type Demo struct {
	Name    string
	Family  Family
	Title   string
	Summary string

	Intent string
	Pros   []string
	Cons   []string
	Roles  []Role

	Run func(w io.Writer)
}

var demos = []Demo{
	{
		Name:    "abstract-factory",
		Family:  Creational,
		Title:   "Abstract Factory — matched product families",
		Summary: "Window/Mac factories each produce a button+checkbox pair",
		Intent:  "Provide an interface for creating families of related objects without naming their concrete types.",
		Pros: []string{
			"Products created together always belong to the same theme",
			"Clients use interfaces; concrete types stay inside the factories",
			"A new family is one new factory plus its products",
		},
		Cons: []string{
			"Many small types; the structure grows with every family",
			"Abstract and concrete factories must be written up front",
			"A new product kind touches every factory",
		},
		Roles: []Role{
			{"Abstract factory", "GUIFactory: the set of creation methods"},
			{"Concrete factory", "WindowFactory, MacFactory"},
			{"Abstract product", "Button, Checkbox"},
			{"Concrete product", "WindowButton, WindowCheckbox, MacButton, MacCheckbox"},
			{"Client", "Render: works only through the interfaces"},
		},
		Run: abstractfactory.Demo,
	},
	{
		Name:    "builder",
		Family:  Creational,
		Title:   "Builder — director sequences builder steps",
		Summary: "Director recipes assemble GUI component lists",
		Intent:  "Separate building a complex object from its representation, so one process can create different results.",
		Pros: []string{
			"Construction logic is hidden from the client",
			"The same process yields different representations",
			"A new representation is one more builder",
			"The director owns step order; clients pick a recipe",
		},
		Cons: []string{
			"Several cooperating types obscure the intent",
			"Step-by-step assembly costs some speed and memory",
		},
		Roles: []Role{
			{"Builder", "GUIBuilder: the build-step interface"},
			{"Concrete builder", "WindowGUIBuilder, MacGUIBuilder: implement the steps, hold the result"},
			{"Product", "GUI"},
			{"Director", "Director: runs steps in a fixed order (optional)"},
			{"Client", "Demo: picks a builder and a recipe"},
		},
		Run: builder.Demo,
	},
	{
		Name:    "factory-method",
		Family:  Creational,
		Title:   "Factory Method — creation hook behind a template method",
		Summary: "Dialog.Render defers button creation to a creator",
		Intent:  "Define the workflow once and let variants decide which concrete product it creates.",
		Pros: []string{
			"New products extend without changing existing code",
			"Creation code is centralised and can be overridden",
			"Shared workflow is written once in the creator",
			"Clients depend on interfaces, not concrete products",
		},
		Cons: []string{
			"More types and interfaces to follow",
			"Each new product needs its own type and creator",
		},
		Roles: []Role{
			{"Product", "Button"},
			{"Concrete product", "WindowButton, MacButton"},
			{"Creator", "Dialog: declares Render"},
			{"Concrete creator", "WindowDialog, MacDialog: implement CreateButton"},
		},
		Run: factorymethod.Demo,
	},
	{
		Name:    "prototype",
		Family:  Creational,
		Title:   "Prototype — shallow clone",
		Summary: "Document copies itself field by field",
		Intent:  "Create new objects by copying an existing one instead of constructing them.",
		Pros: []string{
			"Copying skips expensive setup",
			"Objects can be copied without knowing their concrete type",
			"Any type that can copy itself fits in",
			"Copies happen at run time, more flexible than static construction",
		},
		Cons: []string{
			"Shallow copies share references with the original",
			"Every type must implement Clone",
			"It is harder to tell where an object came from",
		},
		Roles: []Role{
			{"Prototype", "Prototype[T]: the Clone contract"},
			{"Concrete prototype", "Document: copies its own fields"},
			{"Client", "Demo: clones instead of constructing"},
		},
		Run: prototype.Demo,
	},
	{
		Name:    "singleton",
		Family:  Creational,
		Title:   "Singleton — one lazily-created instance",
		Summary: "sync.Once guards the single construction",
		Intent:  "Restrict a type to a single instance and provide one way to reach it.",
		Pros: []string{
			"The same object is reachable from anywhere",
			"A shared resource is managed in one place",
			"Only one copy of the state, so no syncing between copies",
		},
		Cons: []string{
			"Global state is hard to replace in tests",
			"First access funnels through one synchronization point",
			"Fixing the count to one limits later extension",
		},
		Roles: []Role{
			{"Unexported constructor", "newSingleton: unreachable from other packages"},
			{"Package-level instance", "the single *Singleton, set once"},
			{"Accessor", "GetInstance: creates lazily, returns the instance"},
		},
		Run: singleton.Demo,
	},
	{
		Name:    "adapter",
		Family:  Structural,
		Title:   "Adapter — 110V legacy behind a 220V interface",
		Summary: "PowerAdapter converts OldSystem to Target",
		Intent:  "Let two incompatible interfaces work together by converting one into the other.",
		Pros: []string{
			"Old and new code work together without editing the old code",
			"Existing types are reused, not duplicated",
			"Another interface is just another adapter",
		},
		Cons: []string{
			"An extra layer adds some complexity",
			"Every call pays for one more hop",
		},
		Roles: []Role{
			{"Target", "Target: the interface the client expects"},
			{"Adaptee", "OldSystem: the existing type with the wrong interface"},
			{"Adapter", "PowerAdapter: converts the adaptee to the target"},
			{"Client", "Client: sees only Target"},
		},
		Run: adapter.Demo,
	},
}

// All returns every demo in run order. The slice is a copy.
func All() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// Lookup finds a demo by name, ignoring case.
func Lookup(name string) (Demo, error) {
	for _, d := range demos {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w %q", ErrUnknownDemo, name)
}

// Names returns the demo names in run order.
func Names() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	return names
}

// ByFamily returns the demos belonging to f, in run order.
func ByFamily(f Family) []Demo {
	var out []Demo
	for _, d := range demos {
		if d.Family == f {
			out = append(out, d)
		}
	}
	return out
}

// Families returns every family present in the catalog, in first-seen order.
func Families() []Family {
	seen := make(map[Family]bool)
	var out []Family
	for _, d := range demos {
		if !seen[d.Family] {
			seen[d.Family] = true
			out = append(out, d.Family)
		}
	}
	return out
}
