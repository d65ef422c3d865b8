package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

func (a *App) commands() []command {
	return []command{
		{"status", "show connectivity and local data status", a.status},

		{"register", "create an account", a.register},
		{"login", "sign in", a.login},
		{"logout", "sign out and forget the cached profile", a.logout},
		{"whoami", "show the signed-in driver", a.whoami},
		{"profile", "show the profile, or update it: profile name=Ann theme=dark", a.profile},

		{"users", "list all users (admin)", a.users},
		{"grant", "change a user's flags: grant <id> premium=true admin=false", a.grant},

		{"income", "list income and expense records", a.income},
		{"addincome", "add an income or expense record", a.addIncome},
		{"delincome", "delete a record: delincome <id>", a.delIncome},
		{"summary", "show income, expenses and savings", a.summary},

		{"posts", "show the community feed", a.posts},
		{"post", "publish a post with an optional attachment", a.post},

		{"notifs", "list notifications", a.notifications},
		{"readall", "mark every notification as read", a.readAll},
		{"delnotif", "delete a notification: delnotif <id>", a.delNotification},

		{"notes", "list notes", a.notes},
		{"addnote", "add a note", a.addNote},
		{"delnote", "delete a note: delnote <id>", a.delNote},

		{"alarms", "list alarms", a.alarms},
		{"addalarm", "add an alarm", a.addAlarm},
		{"togglealarm", "enable or disable an alarm: togglealarm <id>", a.toggleAlarm},
		{"delalarm", "delete an alarm: delalarm <id>", a.delAlarm},

		{"cars", "list vehicle checks and the health score", a.cars},
		{"addcar", "add a vehicle check", a.addCar},

		{"health", "list health logs", a.health},
		{"addhealth", "add a health log", a.addHealth},
	}
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}

func (a *App) choose(text string, options ...string) (string, error) {
	return GetChoice(a.reader, text, options, a.out)
}

// idArg returns args[0] or asks for an id.
func (a *App) idArg(args []string, what string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return a.prompt(fmt.Sprintf("Enter %s id", what))
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func (a *App) status(ctx context.Context, _ []string) error {
	fmt.Fprintf(a.out, "Mode:           %s\n", a.Mode())
	fmt.Fprintf(a.out, "Remote store:   %s\n", configuredText(a.data.RemoteConfigured()))
	fmt.Fprintf(a.out, "Local database: %s\n", a.config.LocalDBPath)
	if p := a.data.User.Current(ctx); p != nil {
		fmt.Fprintf(a.out, "Signed in as:   %s <%s>\n", p.Name, p.Email)
	} else {
		fmt.Fprintln(a.out, "Signed in as:   nobody")
	}
	fmt.Fprintf(a.out, "Unread:         %d\n", a.data.Notifications.UnreadCount(ctx))
	return nil
}

func configuredText(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
