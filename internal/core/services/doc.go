// Package services implements the driving port interfaces.
// Services contain the core export pipeline and orchestrate
// calls to driven ports (adapters).
package services
