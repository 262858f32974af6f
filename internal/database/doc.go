// Package database opens the relational store and owns schema migration.
//
// Table-specific operations live in the subpackages (status, archive,
// journal, users); each exposes a Repository over the shared *gorm.DB.
package database
