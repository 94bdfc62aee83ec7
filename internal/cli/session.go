package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/portal"
)

func newRegisterCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Long: `Create an account and sign in as it.

Missing values are prompted for. The password is asked twice and must be at
least 6 characters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Portal.IsAuthenticated() {
				return model.ErrAlreadyAuthenticated
			}

			p := NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			var err error
			if username == "" {
				if username, err = p.Line("Username: "); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = p.Line("Email: "); err != nil {
					return err
				}
			}
			confirm := password
			if password == "" {
				if password, err = p.Password("Password: "); err != nil {
					return err
				}
				if confirm, err = p.Password("Confirm password: "); err != nil {
					return err
				}
			}

			if err := portal.ValidateRegistration(username, email, password, confirm); err != nil {
				return err
			}

			sess, err := app.Portal.SignUp(cmd.Context(), username, email, password)
			if err != nil {
				if errors.Is(err, model.ErrAlreadyExists) {
					return errors.New("registration failed: email already exists")
				}
				return err
			}

			output(cmd).Print(IdentityView{Authenticated: true, User: sess})
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Portal.IsAuthenticated() {
				return model.ErrAlreadyAuthenticated
			}

			p := NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			var err error
			if email == "" {
				if email, err = p.Line("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = p.Password("Password: "); err != nil {
					return err
				}
			}

			if err := portal.ValidateLogin(email, password); err != nil {
				return err
			}

			if !app.Portal.Login(cmd.Context(), email, password) {
				return errors.New("invalid email or password")
			}

			output(cmd).Print(IdentityView{Authenticated: true, User: app.Portal.CurrentIdentity()})
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Portal.Logout(cmd.Context())
			output(cmd).PrintMessage("See you next time!")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := app.Portal.CurrentIdentity()
			output(cmd).Print(IdentityView{Authenticated: id != nil, User: id})
			return nil
		},
	}
}

