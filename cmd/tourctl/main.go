// Command tourctl is the operator CLI of the tour insights service: it runs
// schema migrations and prints destination reports without the HTTP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tourctl:", err)
		os.Exit(1)
	}
}
