// Package config loads application configuration from the environment.
//
// Configuration is composed of partial configs owned by the packages they
// describe (server, auth, log, database). Defaults come from `default`
// struct tags, and environment variables map onto nested keys through an
// underscore replacer, so SERVER_PORT sets server.port and DATABASE_NAME
// sets database.name. A .env file in the working directory is loaded first
// when present.
package config
