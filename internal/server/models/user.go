// Package models defines the persisted document types of the phonebook.
package models

import (
	"fmt"

	"github.com/dmitrijs2005/phonebook/internal/common"
)

// User is an account document. FriendIDs holds weak references to Person
// documents by id; a referenced person may be deleted independently and the
// entry is dropped at read time.
type User struct {
	ID           string   `bson:"_id,omitempty"`
	Username     string   `bson:"username"`
	PasswordHash []byte   `bson:"password_hash"`
	FriendIDs    []string `bson:"friends"`
}

func (u *User) DocID() string      { return u.ID }
func (u *User) SetDocID(id string) { u.ID = id }

func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	return nil
}

// HasFriend reports whether the given person id is already referenced.
func (u *User) HasFriend(personID string) bool {
	for _, id := range u.FriendIDs {
		if id == personID {
			return true
		}
	}
	return false
}
