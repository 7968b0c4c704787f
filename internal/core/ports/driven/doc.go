// Package driven defines the driven ports: interfaces the core
// requires from infrastructure adapters (HTTP client, config store,
// local state store).
package driven
