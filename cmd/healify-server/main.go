// healify-server runs the local development stand-in for the HealiFy
// prediction service. It keeps everything in memory and exists so the
// CLI can be exercised without the hosted backend.
package main

import (
	"fmt"
	"os"

	"github.com/kriju0726/HealiFy/internal/devserver"
	"github.com/kriju0726/HealiFy/internal/ports"
)

func main() {
	addr := os.Getenv("HEALIFY_LISTEN")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	secret := os.Getenv("HEALIFY_TOKEN_SECRET")
	if secret == "" {
		secret = "healify-dev-secret"
	}

	server := devserver.New(secret, ports.SystemClock{})

	fmt.Fprintf(os.Stderr, "healify-server listening on %s\n", addr)
	if err := server.Run(addr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
