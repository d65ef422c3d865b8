package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) notifications(ctx context.Context, _ []string) error {
	list := a.data.Notifications.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return nil
	}

	for _, n := range list {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		ts := time.UnixMilli(n.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(a.out, "%s %s [%s] %s: %s (%s)\n", mark, ts, n.Type, n.Title, n.Message, n.ID)
	}
	fmt.Fprintf(a.out, "Unread: %d\n", a.data.Notifications.UnreadCount(ctx))
	return nil
}

func (a *App) readAll(ctx context.Context, _ []string) error {
	a.data.Notifications.MarkAllRead(ctx)
	fmt.Fprintln(a.out, "All notifications marked as read")
	return nil
}

func (a *App) delNotification(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "notification")
	if err != nil {
		return err
	}
	if err := a.data.Notifications.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", id)
	return nil
}
