// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two ways a build is driven: a single
// run over one document, or an interactive loop that builds on request.
// Both are decoupled from any specific entrypoint like a CLI.
package app
