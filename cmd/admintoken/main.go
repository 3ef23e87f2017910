// Command admintoken mints an operator bearer token for the admin routes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/service"

	"github.com/google/uuid"
)

func main() {
	actor := flag.String("actor", "", "operator id (uuid); a new one is generated when empty")
	role := flag.String("role", "admin", "token role")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("MKT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	id := uuid.New()
	if *actor != "" {
		if id, err = uuid.Parse(*actor); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -actor: %v\n", err)
			os.Exit(2)
		}
	}

	token, expiry, err := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer).Generate(id, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("actor:   %s\nexpires: %s\n%s\n", id, expiry.Format(time.RFC3339), token)
}
