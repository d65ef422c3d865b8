package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/client/services"
	"github.com/dmitrijs2005/driverhelper/internal/common"
)

// register prompts for a display name, email and password and creates an
// account. Without a reachable remote store an offline profile is created.
func (a *App) register(ctx context.Context, _ []string) error {
	name, err := a.prompt("Enter your name")
	if err != nil {
		return err
	}
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	p, err := a.data.User.SignUp(ctx, name, email, password)
	if err != nil {
		return err
	}
	a.signedIn(p)
	return nil
}

// login prompts for credentials. Rejected credentials are returned; an
// unreachable remote store yields an offline profile instead.
func (a *App) login(ctx context.Context, _ []string) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	p, err := a.data.User.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	a.signedIn(p)
	return nil
}

func (a *App) signedIn(p *models.UserProfile) {
	a.setUserName(p.Name)
	fmt.Fprintf(a.out, "Welcome, %s!\n", p.Name)
	if strings.HasPrefix(p.ID, services.OfflineIDPrefix) {
		fmt.Fprintln(a.out, "Working offline: your data stays on this device.")
	}
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.data.User.Logout(ctx)
	a.setUserName("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	p := a.data.User.Current(ctx)
	if p == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	a.setUserName(p.Name)
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", p.Name, p.Email, p.ID)
	return nil
}
