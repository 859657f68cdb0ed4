// Package store provides abstractions and error contracts for data
// persistence. Concrete implementations live in platform/postgres.
package store
