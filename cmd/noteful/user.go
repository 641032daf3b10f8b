package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notefulapp/noteful-server/internal/service"
)

var userFullname string

// readPassword prompts on w and reads a line without echo. Swapped in tests.
var readPassword = func(w io.Writer, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("password prompt needs an interactive terminal")
	}

	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	// Passwords are compared byte for byte, so the input is not trimmed.
	return string(b), nil
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Register a user, prompting for the password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword(cmd.ErrOrStderr(), "Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}

		u, err := do.MustInvoke[*service.UserService](injector).Register(cmd.Context(), service.RegisterRequest{
			Fullname: userFullname,
			Username: args[0],
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", u.Username, u.ID)
		return nil
	},
}

var userVerifyCmd = &cobra.Command{
	Use:   "verify <username>",
	Short: "Check a password against the stored hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return err
		}

		u, err := do.MustInvoke[*service.UserService](injector).Authenticate(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK %s (%s)\n", u.Username, u.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userFullname, "fullname", "", "Display name")

	userCmd.AddCommand(userAddCmd, userVerifyCmd)
	rootCmd.AddCommand(userCmd)
}
