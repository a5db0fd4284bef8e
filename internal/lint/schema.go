package lint

// ClassSchema answers which classes exist. It is read-only for rules.
type ClassSchema interface {
	// Class looks up a class by its exact name.
	Class(name string) (ClassDescriptor, bool)
	// Len is the number of known classes; zero means no schema is configured.
	Len() int
}

// ClassDescriptor answers membership questions for one class. Both methods
// resolve through whatever inheritance the schema defines.
type ClassDescriptor interface {
	HasProperty(name string) bool
	HasEvent(name string) bool
}

// EmptySchema knows no classes.
type EmptySchema struct{}

func (EmptySchema) Class(string) (ClassDescriptor, bool) { return nil, false }
func (EmptySchema) Len() int                             { return 0 }
