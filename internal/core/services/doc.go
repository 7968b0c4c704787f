// Package services implements the core application services behind
// the driving ports. Services depend only on domain types and driven
// ports.
package services
