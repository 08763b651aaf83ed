package core

// Note is the central entity of the domain: one record in the owned
// collection. The ID is unique within the collection and immutable after
// creation; Title and Description are the only mutable fields.
type Note struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}
