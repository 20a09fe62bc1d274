// Command veria-screen screens wallet addresses, ENS names, or IBANs from the
// command line and prints a block/allow verdict for each.
//
// The API key is read from the VERIA_API_KEY environment variable, optionally
// loaded from a .env file. Exits non-zero when any input blocks or fails.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	veria "github.com/veria-protocol/veria-go"
)

func main() {
	// .env is optional; in containers the key is injected directly.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatal("usage: veria-screen <address> [address...]")
	}

	client, err := veria.NewClient(veria.Config{
		APIKey:  os.Getenv("VERIA_API_KEY"),
		BaseURL: os.Getenv("VERIA_BASE_URL"),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	inputs := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		if input := strings.TrimSpace(arg); input != "" {
			inputs = append(inputs, input)
		}
	}

	exitCode := 0
	for _, r := range client.ScreenBatch(ctx, inputs) {
		if r.Err != nil {
			log.Printf("error screening %s: %v", r.Input, r.Err)
			exitCode = 1
			continue
		}

		verdict := "allow"
		if r.Result.ShouldBlock() {
			verdict = "BLOCK"
			exitCode = 1
		}
		fmt.Printf("%-44s %-6s risk=%-8s score=%-3d chain=%s\n",
			r.Result.Resolved, verdict, r.Result.Risk, r.Result.Score, r.Result.Chain)
	}
	os.Exit(exitCode)
}
