package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
)

var errNotSignedIn = errors.New("not signed in")

// profile prints the current profile. With key=value arguments it updates
// name, mobile, language or theme and saves the profile.
func (a *App) profile(ctx context.Context, args []string) error {
	p := a.data.User.Current(ctx)
	if p == nil {
		return errNotSignedIn
	}

	if len(args) > 0 {
		updated, err := applyProfileArgs(*p, args)
		if err != nil {
			return err
		}
		if err := a.data.User.Save(ctx, updated); err != nil {
			return err
		}
		a.setUserName(updated.Name)
		p = &updated
	}

	fmt.Fprintf(a.out, "ID:        %s\n", p.ID)
	fmt.Fprintf(a.out, "Name:      %s\n", p.Name)
	fmt.Fprintf(a.out, "Email:     %s\n", p.Email)
	fmt.Fprintf(a.out, "Mobile:    %s\n", p.Mobile)
	fmt.Fprintf(a.out, "Language:  %s\n", p.Language)
	fmt.Fprintf(a.out, "Theme:     %s\n", p.Theme)
	fmt.Fprintf(a.out, "Premium:   %s\n", yesNo(p.Premium))
	fmt.Fprintf(a.out, "Admin:     %s\n", yesNo(p.IsAdmin))
	return nil
}

func applyProfileArgs(p models.UserProfile, args []string) (models.UserProfile, error) {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return p, fmt.Errorf("%w: expected key=value, got %q", common.ErrInvalidValue, arg)
		}
		switch strings.ToLower(key) {
		case "name":
			p.Name = value
		case "mobile":
			p.Mobile = value
		case "language":
			p.Language = value
		case "theme":
			t := models.Theme(strings.ToLower(value))
			if t != models.ThemeLight && t != models.ThemeDark {
				return p, fmt.Errorf("%w: theme must be light or dark", common.ErrInvalidValue)
			}
			p.Theme = t
		default:
			return p, fmt.Errorf("%w: unknown profile field %q", common.ErrInvalidValue, key)
		}
	}
	return p, nil
}

func (a *App) users(ctx context.Context, _ []string) error {
	list := a.data.Admin.ListAll(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPREMIUM\tADMIN")
	for _, u := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, yesNo(u.Premium), yesNo(u.IsAdmin))
	}
	return tw.Flush()
}

// grant parses "grant <id> premium=<bool> admin=<bool>".
func (a *App) grant(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: grant <id> premium=true|false admin=true|false", common.ErrInvalidValue)
	}

	upd, err := parseProfileUpdate(args[1:])
	if err != nil {
		return err
	}
	if err := a.data.Admin.SetStatus(ctx, args[0], upd); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated", args[0])
	return nil
}

func parseProfileUpdate(args []string) (models.ProfileUpdate, error) {
	var upd models.ProfileUpdate
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return upd, fmt.Errorf("%w: expected key=value, got %q", common.ErrInvalidValue, arg)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return upd, fmt.Errorf("%w: %s must be true or false", common.ErrInvalidValue, key)
		}
		switch strings.ToLower(key) {
		case "premium":
			upd.Premium = &b
		case "admin", "isadmin":
			upd.IsAdmin = &b
		default:
			return upd, fmt.Errorf("%w: unknown flag %q", common.ErrInvalidValue, key)
		}
	}
	return upd, nil
}
