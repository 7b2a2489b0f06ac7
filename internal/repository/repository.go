// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch data, abstracting SQL
// logic away from the service layer. This service is read-only: the
// `solutions` table is written and migrated by an external process.
package repository
