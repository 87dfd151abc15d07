package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
)

// Liveness probe for container health checks: GET /health on the configured
// port, exit 0 when the server answers 200.
func main() {
	port := 8000
	if raw := os.Getenv("PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid PORT %q: %v\n", raw, err)
			os.Exit(1)
		}
		port = parsed
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://localhost:%d/health", port))
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "server returned status %d\n", resp.StatusCode)
		os.Exit(1)
	}

	fmt.Println("ok")
}
