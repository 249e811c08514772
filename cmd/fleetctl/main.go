package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - token:   Mint a dashboard access token
// - migrate: Create or update the display_devices table
// - qr:      Write a setup QR code for a display to a PNG file

func main() {
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	qrCmd := flag.NewFlagSet("qr", flag.ExitOnError)

	// token parameters
	tokenSubject := tokenCmd.String("subject", "", "Operator identity stored in the sub claim")
	tokenRoles := tokenCmd.String("roles", "", "Comma separated roles; defaults to auth.operatorRole")

	// qr parameters
	qrDevice := qrCmd.String("device", "", "Device id to encode; a new id is generated when empty")
	qrOutput := qrCmd.String("output", "", "PNG file to write; defaults to <device>.png")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := fleetFlags{
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			roles:   tokenRoles,
		},
		Migrate: migrateFlags{
			cmd: migrateCmd,
		},
		QR: qrFlags{
			cmd:    qrCmd,
			device: qrDevice,
			output: qrOutput,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type fleetFlags struct {
	Token   tokenFlags
	Migrate migrateFlags
	QR      qrFlags
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	roles   *string
}

type migrateFlags struct {
	cmd *flag.FlagSet
}

type qrFlags struct {
	cmd    *flag.FlagSet
	device *string
	output *string
}

func runSubcommand(ctx context.Context, flags *fleetFlags) error {
	switch os.Args[1] {
	case "token":
		return handleToken(flags)
	case "migrate":
		return handleMigrate(ctx, flags)
	case "qr":
		return handleQR(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleToken(flags *fleetFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.subject == "" {
		return errors.New("--subject flag is required for token command")
	}

	return runToken(*flags.Token.subject, splitRoles(*flags.Token.roles))
}

func handleMigrate(ctx context.Context, flags *fleetFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return runMigrate(ctx)
}

func handleQR(ctx context.Context, flags *fleetFlags) error {
	if err := flags.QR.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse qr flags")
	}

	return runQR(ctx, *flags.QR.device, *flags.QR.output)
}

func splitRoles(raw string) []string {
	var roles []string
	for _, role := range strings.Split(raw, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}

	return roles
}

func printUsage() {
	fmt.Println("Usage: fleetctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  token      Mint a dashboard access token")
	fmt.Println("  migrate    Create or update the display_devices table")
	fmt.Println("  qr         Write a display setup QR code to a PNG file")
	fmt.Println("")
	fmt.Println("Use 'fleetctl <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
