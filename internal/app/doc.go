// Package app contains the core application logic. It wires the script
// loader, the function registry and the renderer together behind App, and
// is independent of any specific entrypoint like the CLI.
package app
