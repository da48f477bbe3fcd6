// Package app contains the core application logic. It defines the App struct,
// its configuration and the normalization run itself (load, resolve, report),
// decoupled from the CLI entrypoint.
package app
