// Package entities holds the domain model: the Book entity, the Settings
// aggregate with its Language and Theme value objects, and the domain error
// taxonomy shared by entities and persistence gateways.
//
// Entities are plain values. Constructors and update methods validate their
// input and return a new value; none of them touch storage.
//
//	book, err := entities.NewBook("Dune", &author, nil, &year)
//	book, err = book.Update(entities.BookUpdate{Title: &newTitle})
package entities
