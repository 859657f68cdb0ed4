// Package config defines the application configuration structures and the
// loading/validation logic around them.
package config
