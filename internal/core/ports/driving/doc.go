// Package driving defines the driving ports: interfaces through which
// external actors (CLI, TUI, MCP server) invoke core services.
package driving
