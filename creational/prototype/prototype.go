// Package prototype shows the Prototype pattern: new objects are made by
// copying an existing one instead of constructing from scratch.
//
// Pros:
//   - Copying skips expensive setup.
//   - Callers can copy an object without knowing its concrete type.
//   - Any new type that can copy itself fits in.
//   - Copies are made at run time, which is more flexible than fixed construction code.
//
// Cons:
//   - A shallow copy shares references with the original, which can surprise callers.
//   - Every type has to implement Clone.
//   - Reading the code, it is harder to tell where an object came from.
//
// Roles:
//   - Prototype: the copy contract (Prototype[T]).
//   - Concrete prototype: copies its own state (Document).
//   - Client: calls Clone to get new objects (Demo).
package prototype

import (
	"fmt"
	"io"
)

// Prototype is anything that can copy itself. The type parameter lets Clone
// return the concrete type, so callers need no type assertion.
type Prototype[T any] interface {
	Clone() T
}

// Author is shared between a document and its clones.
type Author struct {
	Name string
}

// Document is the concrete prototype.
type Document struct {
	Title   string
	Content string
	Author  *Author
}

// NewDocument builds a document; author may be nil.
func NewDocument(title, content string, author *Author) *Document {
	return &Document{Title: title, Content: content, Author: author}
}

// Clone returns a shallow copy, field by field:
//   - Title, Content: duplicated; editing the clone leaves the original alone.
//   - Author: aliased; both documents point at the same *Author.
func (d *Document) Clone() *Document {
	return &Document{
		Title:   d.Title,
		Content: d.Content,
		Author:  d.Author,
	}
}

// Display prints the title and content.
func (d *Document) Display(w io.Writer) {
	fmt.Fprintf(w, "Document: %s\n", d.Title)
	fmt.Fprintf(w, "Content: %s\n", d.Content)
}

// CloneAll works over any prototype; it never names Document.
func CloneAll[T Prototype[T]](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}

// Demo clones a document and retitles the copy; the original keeps its title.
func Demo(w io.Writer) {
	original := NewDocument("Original", "This is the original document.", nil)
	original.Display(w)

	cloned := original.Clone()
	cloned.Title = "Clone"
	cloned.Display(w)
}
