package cli

import (
	"fmt"

	"github.com/lifelens/lifelens-cli/internal/session"
)

type AuthCmd struct {
	Login  AuthLoginCmd  `cmd:"" help:"Store credentials in the OS keyring."`
	Logout AuthLogoutCmd `cmd:"" help:"Remove stored credentials."`
	Status AuthStatusCmd `cmd:"" help:"Show the current session."`
}

type AuthLoginCmd struct {
	UserID string `arg:"" help:"Backend user id."`
	Token  string `arg:"" help:"Access token issued by the auth provider."`
	Email  string `help:"Account email, shown in status output."`
}

func (c *AuthLoginCmd) Run(ctx *Context) error {
	if !session.IsAvailable() {
		return session.ErrKeyringUnavailable
	}
	if err := ctx.Session.Login(c.UserID, c.Token, c.Email); err != nil {
		return err
	}
	fmt.Println("Logged in. Credentials stored in the OS keyring.")
	return nil
}

type AuthLogoutCmd struct{}

func (c *AuthLogoutCmd) Run(ctx *Context) error {
	if err := ctx.Session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type AuthStatusCmd struct{}

func (c *AuthStatusCmd) Run(ctx *Context) error {
	if !ctx.Session.IsAuthenticated() {
		fmt.Println("Not logged in. Run 'lifelens auth login <user-id> <token>'.")
		return nil
	}

	fmt.Printf("Logged in as %s\n", ctx.Session.UserID())
	if email := ctx.Session.Email(); email != "" {
		fmt.Printf("Email: %s\n", email)
	}
	return nil
}
