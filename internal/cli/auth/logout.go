package auth

import (
	"fmt"

	"github.com/moodlogapp/moodlog/internal/cli"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if !ctx.Session.Authenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	ctx.Session.Logout()
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	if ctx.Session.Authenticated() {
		fmt.Println("Logged in.")
	} else {
		fmt.Println("Not logged in.")
	}
	return nil
}
