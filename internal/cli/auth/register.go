package auth

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/validation"
)

type RegisterCmd struct {
	Name     string `short:"n" help:"Display name."`
	Email    string `short:"e" help:"Account email address."`
	Password string `short:"p" help:"Account password (prompted when omitted)."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	confirm := c.Password
	if c.Name == "" || c.Email == "" || c.Password == "" {
		if err := c.prompt(&confirm); err != nil {
			return err
		}
	}
	if err := validation.Registration(c.Name, c.Email, c.Password, confirm); err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	if err := ctx.Client.Register(reqCtx, c.Name, c.Email, c.Password); err != nil {
		return err
	}

	fmt.Println("Account created, you are logged in.")
	return nil
}

func (c *RegisterCmd) prompt(confirm *string) error {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&c.Name),
		huh.NewInput().
			Title("Email").
			Value(&c.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&c.Password),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Value(confirm),
	)).Run()
}
