// Package generation defines the boundary between the application core and
// the external language-model service that produces educational content.
package generation
