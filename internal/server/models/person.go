package models

import (
	"fmt"

	"github.com/dmitrijs2005/phonebook/internal/common"
)

// Person is a directory entry. The address is a derived view over Street and
// City; no separate address document exists. Phone is optional and omitted
// from the stored document when empty, so presence filters work the same way
// in Mongo and in the in-memory backend.
type Person struct {
	ID     string `bson:"_id,omitempty"`
	Name   string `bson:"name"`
	Phone  string `bson:"phone,omitempty"`
	Street string `bson:"street"`
	City   string `bson:"city"`
}

func (p *Person) DocID() string      { return p.ID }
func (p *Person) SetDocID(id string) { p.ID = id }

func (p *Person) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if p.Street == "" {
		return fmt.Errorf("%w: street is required", common.ErrorValidation)
	}
	if p.City == "" {
		return fmt.Errorf("%w: city is required", common.ErrorValidation)
	}
	return nil
}
