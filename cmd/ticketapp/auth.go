package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ticketapp/ticketapp/pkg/validation"
	"golang.org/x/term"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		password, err := resolvePassword(cmd)
		if err != nil {
			return err
		}

		if errs := validation.ValidateSignup(email, password, name); len(errs) > 0 {
			return fieldErrors(errs)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.auth.Signup(email, password, name)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Account created for %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, err := resolvePassword(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.auth.Login(email, password)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Logged in as %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.auth.Logout(); err != nil {
			return err
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		user, ok := a.auth.CurrentUser()
		if !ok {
			return fmt.Errorf("not logged in")
		}

		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	signupCmd.Flags().String("email", "", "Email address (required)")
	signupCmd.Flags().String("name", "", "Display name (required)")
	signupCmd.Flags().String("password", "", "Password (prompted if omitted)")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("name")

	loginCmd.Flags().String("email", "", "Email address (required)")
	loginCmd.Flags().String("password", "", "Password (prompted if omitted)")
	_ = loginCmd.MarkFlagRequired("email")
}

// resolvePassword returns the --password flag value, prompting on the
// terminal without echo when the flag is omitted.
func resolvePassword(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	// Piped input
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// fieldErrors folds validation violations into a single error, one
// violation per line.
func fieldErrors(errs []validation.FieldError) error {
	var b strings.Builder
	b.WriteString("invalid input:")
	for _, e := range errs {
		fmt.Fprintf(&b, "\n  %s: %s", e.Field, e.Message)
	}
	return fmt.Errorf("%s", b.String())
}
