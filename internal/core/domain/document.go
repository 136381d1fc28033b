package domain

// Well-known field names. Title and authors are intrinsic to every
// bibliographic record; date drives time slicing.
const (
	FieldTitle   = "title"
	FieldAuthors = "authors"
	FieldDate    = "date"
)

// Author is one (surname, given name) pair from a document's author list.
type Author struct {
	Surname string
	Given   string
}

// Document represents one bibliographic record with an open attribute set.
// It is the canonical representation after reading and is treated as
// immutable by the corpus engine.
type Document struct {
	// Title is the record title, used for display and identity hashing.
	Title string

	// Authors is the ordered author list, used for identity hashing and
	// author indexing.
	Authors []Author

	// Fields contains the remaining named attributes: scalars, sequences
	// of scalars, or sequences of weighted tokens.
	Fields map[string]FieldValue
}

// Has reports whether the document carries the named field. Title and
// authors count as fields when non-empty.
func (d *Document) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Get returns the named field value. The intrinsic title and author fields
// are exposed under their well-known names so they can be indexed like any
// other attribute.
func (d *Document) Get(name string) (FieldValue, bool) {
	switch name {
	case FieldTitle:
		if d.Title != "" {
			return String(d.Title), true
		}
	case FieldAuthors:
		if len(d.Authors) > 0 {
			return d.authorsValue(), true
		}
	}
	v, ok := d.Fields[name]
	return v, ok
}

// authorsValue renders the author list as a sequence of name pairs.
func (d *Document) authorsValue() List {
	values := make(List, len(d.Authors))
	for i, a := range d.Authors {
		values[i] = Tuple{String(a.Surname), String(a.Given)}
	}
	return values
}
