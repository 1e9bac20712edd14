// Package ids generates the statistically unique event identifiers the
// planner hands out on creation.
package ids

import "github.com/google/uuid"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (*Generator) NewID() string {
	return uuid.NewString()
}
