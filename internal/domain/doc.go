// Package domain defines the core business entities of PedagogIA:
// accounts, allowlist entries, and generated-content history records.
package domain
