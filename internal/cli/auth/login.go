package auth

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/validation"
)

type LoginCmd struct {
	Email    string `short:"e" help:"Account email address."`
	Password string `short:"p" help:"Account password (prompted when omitted)."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if c.Email == "" || c.Password == "" {
		if err := c.prompt(); err != nil {
			return err
		}
	}
	if err := validation.Email(c.Email); err != nil {
		return err
	}
	if c.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	if err := ctx.Client.Login(reqCtx, c.Email, c.Password); err != nil {
		return err
	}

	fmt.Println("Logged in.")
	return nil
}

func (c *LoginCmd) prompt() error {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Value(&c.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&c.Password),
	)).Run()
}
