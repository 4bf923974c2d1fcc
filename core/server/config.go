package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Prefix is the base path under which all API routes are mounted.
	Prefix string `mapstructure:"prefix" default:"/api/v1"`
}
