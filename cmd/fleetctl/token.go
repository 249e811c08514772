package main

import (
	"fmt"

	"displayfleet/config"
	"displayfleet/internal/infra/auth"

	"github.com/pkg/errors"
)

// runToken prints a signed access token for subject.
func runToken(subject string, roles []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	token, err := mintToken(cfg, subject, roles)
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}

// mintToken signs a token for subject. Without roles it grants auth.operatorRole.
func mintToken(cfg *config.Config, subject string, roles []string) (string, error) {
	if len(roles) == 0 && cfg.Auth != nil {
		roles = []string{cfg.Auth.OperatorRole}
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", err
	}

	return tokenSvc.GenerateToken(subject, roles)
}
