// Package showcase holds the demo widget trees used by the fixedui CLI and
// by integration tests. Every demo shares a uint32 counter as its data.
package showcase

import (
	"sort"

	"github.com/go-drift/fixedui/pkg/app"
)

// Demo is one showcase screen.
type Demo struct {
	Name     string
	Title    string
	Subtitle string
	// Widgets is the number of arena slots the tree uses.
	Widgets int
	Builder  app.Builder[uint32]
}

// demos is the registry of all showcase screens.
var demos = []Demo{
	{"hello", "Hello", "Counter label and increment button", helloWidgets, HelloCounter},
	{"layouts", "Layouts", "Row of buttons around a value", layoutsWidgets, Layouts},
	{"align", "Align", "Left, centred and right aligned labels", alignWidgets, AlignDemo},
}

// DefaultDemo is opened when no demo is named.
const DefaultDemo = "hello"

// Lookup returns the demo called name.
func Lookup(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Demos returns every demo in registration order.
func Demos() []Demo {
	return append([]Demo(nil), demos...)
}

// Names returns the demo names sorted alphabetically.
func Names() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	sort.Strings(names)
	return names
}
