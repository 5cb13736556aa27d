/*
Package main is the entry point for the meeting token service.

The default command loads configuration, initializes the global logging system,
builds the token issuer and serves HTTP until SIGINT or SIGTERM, shutting down
gracefully. The issue and jwks subcommands reuse the same configuration for
operator debugging.
*/
package main

func main() {
	Execute()
}
