package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/dmitrijs2005/phonebook/internal/common"
	"github.com/dmitrijs2005/phonebook/internal/logging"
	"github.com/dmitrijs2005/phonebook/internal/server/models"
	"github.com/dmitrijs2005/phonebook/internal/server/services"
)

// Resolver is the root resolver for both queries and mutations.
type Resolver struct {
	identity  *services.IdentityService
	directory *services.DirectoryService
	logger    logging.Logger
}

func NewResolver(identity *services.IdentityService, directory *services.DirectoryService, logger logging.Logger) *Resolver {
	return &Resolver{
		identity:  identity,
		directory: directory,
		logger:    logger.With("module", "graph"),
	}
}

// ParseSchema binds the schema to a root resolver.
func ParseSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, resolver)
}

// --- queries ---

func (r *Resolver) PersonCount(ctx context.Context) (int32, error) {
	n, err := r.directory.PersonCount(ctx)
	if err != nil {
		r.logger.Error(ctx, "personCount failed", "error", err)
		return 0, errInternal()
	}
	return int32(n), nil
}

func (r *Resolver) AllPersons(ctx context.Context, args struct{ Phone *string }) ([]*PersonResolver, error) {
	var hasPhone *bool
	if args.Phone != nil {
		v := *args.Phone == "YES"
		hasPhone = &v
	}

	list, err := r.directory.AllPersons(ctx, hasPhone)
	if err != nil {
		r.logger.Error(ctx, "allPersons failed", "error", err)
		return nil, errInternal()
	}

	out := make([]*PersonResolver, 0, len(list))
	for _, p := range list {
		out = append(out, &PersonResolver{person: p})
	}
	return out, nil
}

func (r *Resolver) FindPerson(ctx context.Context, args struct{ Name string }) (*PersonResolver, error) {
	person, err := r.directory.FindPerson(ctx, args.Name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "findPerson failed", "error", err)
		return nil, errInternal()
	}
	return &PersonResolver{person: person}, nil
}

func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	identity := IdentityFromContext(ctx)
	if identity.Anonymous() {
		return nil, nil
	}
	return &UserResolver{user: identity.User, directory: r.directory}, nil
}

// --- mutations ---

func (r *Resolver) AddPerson(ctx context.Context, args struct {
	Name   string
	Phone  *string
	Street string
	City   string
}) (*PersonResolver, error) {
	identity := IdentityFromContext(ctx)
	if identity.Anonymous() {
		return nil, errUnauthenticated()
	}

	person := &models.Person{Name: args.Name, Street: args.Street, City: args.City}
	if args.Phone != nil {
		person.Phone = *args.Phone
	}

	created, err := r.directory.AddPerson(ctx, identity.User, person)
	if err != nil {
		return nil, errBadUserInput("saving person failed", args.Name, err)
	}
	return &PersonResolver{person: created}, nil
}

func (r *Resolver) EditNumber(ctx context.Context, args struct{ Name, Phone string }) (*PersonResolver, error) {
	updated, err := r.directory.EditNumber(ctx, args.Name, args.Phone)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errNotFound("person not found")
		}
		return nil, errBadUserInput("saving phone failed", args.Name, err)
	}
	return &PersonResolver{person: updated}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Username string }) (*UserResolver, error) {
	user, err := r.identity.Register(ctx, args.Username)
	if err != nil {
		return nil, errBadUserInput("creating the user failed", args.Username, err)
	}
	return &UserResolver{user: user, directory: r.directory}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Username, Password string }) (*TokenResolver, error) {
	token, err := r.identity.Login(ctx, args.Username, args.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return nil, errInvalidCredentials()
		}
		r.logger.Error(ctx, "login failed", "error", err)
		return nil, errInternal()
	}
	return &TokenResolver{value: token}, nil
}

func (r *Resolver) AddAsFriend(ctx context.Context, args struct{ Name string }) (*UserResolver, error) {
	identity := IdentityFromContext(ctx)
	if identity.Anonymous() {
		return nil, errUnauthenticated()
	}

	updated, err := r.directory.AddFriend(ctx, identity.User, args.Name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errNotFound("person not found")
		}
		r.logger.Error(ctx, "addAsFriend failed", "error", err)
		return nil, errInternal()
	}
	return &UserResolver{user: updated, directory: r.directory}, nil
}

// --- type resolvers ---

type PersonResolver struct {
	person *models.Person
}

func (r *PersonResolver) Name() string { return r.person.Name }

func (r *PersonResolver) Phone() *string {
	if r.person.Phone == "" {
		return nil
	}
	phone := r.person.Phone
	return &phone
}

// Address is a view derived from the person's own street and city fields.
func (r *PersonResolver) Address() *AddressResolver {
	return &AddressResolver{street: r.person.Street, city: r.person.City}
}

func (r *PersonResolver) ID() graphql.ID { return graphql.ID(r.person.ID) }

type AddressResolver struct {
	street string
	city   string
}

func (r *AddressResolver) Street() string { return r.street }
func (r *AddressResolver) City() string   { return r.city }

type UserResolver struct {
	user      *models.User
	directory *services.DirectoryService
}

func (r *UserResolver) Username() string { return r.user.Username }
func (r *UserResolver) ID() graphql.ID   { return graphql.ID(r.user.ID) }

func (r *UserResolver) Friends(ctx context.Context) ([]*PersonResolver, error) {
	friends, err := r.directory.FriendsOf(ctx, r.user)
	if err != nil {
		return nil, errInternal()
	}
	out := make([]*PersonResolver, 0, len(friends))
	for _, p := range friends {
		out = append(out, &PersonResolver{person: p})
	}
	return out, nil
}

type TokenResolver struct {
	value string
}

func (r *TokenResolver) Value() string { return r.value }
