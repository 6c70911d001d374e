// Package repository owns the data the services read.
//
// There is no database: the only state is the fixed, read-only set of
// person ids. Keeping it behind a repository leaves the service layer
// unaware of where the ids come from.
package repository
