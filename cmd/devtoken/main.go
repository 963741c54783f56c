// Command devtoken mints an access token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pesantren/config"
	"pesantren/internal/domain/entity"
	"pesantren/internal/infra/auth"

	"github.com/google/uuid"
)

func main() {
	actor := flag.String("actor", "", "actor id (random when empty)")
	roles := flag.String("roles", string(entity.RoleStudent), "comma separated roles")
	flag.Parse()

	if err := run(*actor, *roles); err != nil {
		slog.Error("Failed to mint token", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(actor, roles string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	actorID := uuid.New()
	if actor != "" {
		if actorID, err = uuid.Parse(actor); err != nil {
			return fmt.Errorf("invalid actor id: %w", err)
		}
	}

	granted := entity.RolesFromStrings(strings.Split(roles, ","))
	if len(granted) == 0 {
		return fmt.Errorf("no valid role in %q", roles)
	}

	token, err := tokens.GenerateAccessToken(actorID, granted.ToStrings())
	if err != nil {
		return err
	}

	fmt.Printf("actor:  %s\nroles:  %s\ntoken:  %s\n", actorID, strings.Join(granted.ToStrings(), ","), token)

	return nil
}
