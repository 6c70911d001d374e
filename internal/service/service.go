// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// data from the handler and shapes the response; the only lookups it does
// go through the repository layer.
package service
