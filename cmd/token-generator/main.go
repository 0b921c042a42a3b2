// Command token-generator prints a signed access token for the mutation
// routes of the server. The secret and lifetime are read from the same
// configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xonadon/xonadon-api/internal/config"
	"github.com/xonadon/xonadon-api/internal/service/auth"
)

func main() {
	subject := flag.String("subject", "xonadon-client", "subject claim of the generated token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg.Auth, *subject, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate token: %v\n", err)
		os.Exit(1)
	}
}

// run signs a token for subject and writes it to out on a single line.
func run(ctx context.Context, cfg config.AuthConfig, subject string, out io.Writer) error {
	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := jwtService.GenerateToken(ctx, strings.TrimSpace(subject))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
