// Package store implements the persistence layer of the application:
// the PostgreSQL connection, the user and todo repositories, and the
// sentinel errors the service layer matches against.
package store
