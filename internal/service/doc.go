// Package service contains the application services that orchestrate the
// stores: account registration/login, history access with ownership
// enforcement, allowlist administration, and generate-and-save.
package service
