// Package graph declares the phonebook GraphQL schema and binds its
// queries and mutations to the identity and directory services.
package graph

// Schema is the complete GraphQL contract served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		username: String!
		friends: [Person!]!
		id: ID!
	}

	type Token {
		value: String!
	}

	type Address {
		street: String!
		city: String!
	}

	type Person {
		name: String!
		phone: String
		address: Address!
		id: ID!
	}

	enum YesNo {
		YES
		NO
	}

	type Query {
		personCount: Int!
		allPersons(phone: YesNo): [Person!]!
		findPerson(name: String!): Person
		me: User
	}

	type Mutation {
		addPerson(
			name: String!
			phone: String
			street: String!
			city: String!
		): Person

		editNumber(
			name: String!
			phone: String!
		): Person

		createUser(
			username: String!
		): User

		login(
			username: String!
			password: String!
		): Token

		addAsFriend(
			name: String!
		): User
	}
`
