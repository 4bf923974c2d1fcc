// Package database handles database connections for the game backend.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures MySQL connections for deployment and sqlite connections for
// tests and local development.
//
// # Connect
//
// The Connect function establishes a connection based on the configured
// driver. For mysql it also creates the target schema on first run, so a
// fresh deployment only needs server credentials.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
