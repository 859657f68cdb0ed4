// Package postgres contains the PostgreSQL implementations of the store
// interfaces, plus the error mapping between driver errors and the store
// package's sentinel errors.
package postgres
