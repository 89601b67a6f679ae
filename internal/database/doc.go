// Package database provides the SQLite connection for the book library.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, pool sizing, auto-migration
//	├── models.go        # Row shapes (BookRecord -> "books")
//	└── books/           # Book gateway: gorm adapter and in-memory adapter
//
// The books relation is created by gorm's auto-migration on open. There is no
// other schema management.
//
// # Usage
//
//	db, err := database.NewDatabase(database.PathForDirectory(dir), database.Options{Logger: log})
//	repo := books.NewRepository(db.DB)
//	book, err := repo.FindByID(ctx, 42)
//
// # Adding a New Relation
//
//  1. Add the row type to models.go with a TableName method
//  2. Register it in the AutoMigrate call in NewDatabase
//  3. Create a sub-package with a Repository struct holding *gorm.DB
//  4. Add a compile-time interface check in internal/interfaces
package database
