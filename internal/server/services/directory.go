package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/phonebook/internal/common"
	"github.com/dmitrijs2005/phonebook/internal/server/models"
	"github.com/dmitrijs2005/phonebook/internal/server/repositories/persons"
	"github.com/dmitrijs2005/phonebook/internal/server/repositories/users"
)

// DirectoryService implements the contact-directory operations: person
// queries, person mutations, and the friendship bookkeeping tied to them.
type DirectoryService struct {
	persons persons.Repository
	users   users.Repository
}

func NewDirectoryService(p persons.Repository, u users.Repository) *DirectoryService {
	return &DirectoryService{persons: p, users: u}
}

func (s *DirectoryService) PersonCount(ctx context.Context) (int64, error) {
	return s.persons.Count(ctx)
}

// AllPersons lists persons, optionally filtered by phone presence.
// nil means unfiltered.
func (s *DirectoryService) AllPersons(ctx context.Context, hasPhone *bool) ([]*models.Person, error) {
	if hasPhone == nil {
		return s.persons.All(ctx)
	}
	return s.persons.ByPhonePresence(ctx, *hasPhone)
}

// FindPerson looks a person up by name; common.ErrorNotFound when absent.
func (s *DirectoryService) FindPerson(ctx context.Context, name string) (*models.Person, error) {
	return s.persons.ByName(ctx, name)
}

// AddPerson inserts the person and appends it to the owner's friends.
// The owner must be a resolved account.
func (s *DirectoryService) AddPerson(ctx context.Context, owner *models.User, person *models.Person) (*models.Person, error) {
	created, err := s.persons.Add(ctx, person)
	if err != nil {
		return nil, err
	}

	if !owner.HasFriend(created.ID) {
		owner.FriendIDs = append(owner.FriendIDs, created.ID)
		if _, err := s.users.Save(ctx, owner); err != nil {
			return nil, fmt.Errorf("error saving user: %w", err)
		}
	}
	return created, nil
}

// EditNumber sets the phone of the named person.
func (s *DirectoryService) EditNumber(ctx context.Context, name, phone string) (*models.Person, error) {
	person, err := s.persons.ByName(ctx, name)
	if err != nil {
		return nil, err
	}
	person.Phone = phone
	return s.persons.Save(ctx, person)
}

// AddFriend appends the named person to the owner's friends. Adding an
// existing friend is a no-op; comparison is by person id.
func (s *DirectoryService) AddFriend(ctx context.Context, owner *models.User, name string) (*models.User, error) {
	person, err := s.persons.ByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if owner.HasFriend(person.ID) {
		return owner, nil
	}

	owner.FriendIDs = append(owner.FriendIDs, person.ID)
	saved, err := s.users.Save(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error saving user: %w", err)
	}
	return saved, nil
}

// FriendsOf resolves the owner's friend references to persons, preserving
// order. References whose person no longer exists are dropped rather than
// surfaced as nulls.
func (s *DirectoryService) FriendsOf(ctx context.Context, owner *models.User) ([]*models.Person, error) {
	friends := make([]*models.Person, 0, len(owner.FriendIDs))
	for _, id := range owner.FriendIDs {
		person, err := s.persons.ByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				continue // dangling reference
			}
			return nil, err
		}
		friends = append(friends, person)
	}
	return friends, nil
}
