// Package repository implements data access for all Redline entities.
//
// Each repository wraps the database.Database interface with SurrealQL
// queries and decodes the driver's loosely typed results into model
// structs. Repositories contain no business rules; validation and
// counter-update ordering live in the service layer.
//
// Counter fields (user topic/reply tallies, subcategory topic tallies,
// topic view and reply counts) are maintained with targeted single-record
// UPDATE statements. Each statement is atomic for its record, but related
// statements are deliberately not wrapped in a transaction.
package repository
