// Package server holds the HTTP server partial configuration.
//
// It defines the listening port and the global API prefix under which the
// user, games and items resources are mounted.
package server
