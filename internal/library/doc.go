// Package library defines the Book record, the Library capability the
// command loop depends on, and Manager, a façade that forwards requests to
// whichever Library implementation it was given.
//
// Identity for removal is the title alone: removing a title drops every
// book that carries it, whatever the author or year.
package library
