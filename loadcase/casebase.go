package loadcase

import (
	"github.com/google/uuid"
)

// caseBase carries the identity fields shared by all load case types.
type caseBase struct {
	name     string    // operator-chosen label, becomes the event description
	typeName string    // the case type tag used in case files
	id       uuid.UUID // unique identity assigned at construction
}

func newCaseBase(name, typeName string) caseBase {
	return caseBase{
		name:     name,
		typeName: typeName,
		id:       uuid.New(),
	}
}

// Name returns the operator-chosen label of the case.
func (c *caseBase) Name() string {
	return c.name
}

// TypeAsString returns the case type tag as used in case files.
func (c *caseBase) TypeAsString() string {
	return c.typeName
}

// ID returns the unique identity of the case.
func (c *caseBase) ID() uuid.UUID {
	return c.id
}
