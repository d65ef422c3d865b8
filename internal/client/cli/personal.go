package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
)

const clockLayout = "15:04"

func (a *App) notes(ctx context.Context, _ []string) error {
	list := a.data.Notes.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notes")
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(a.out, "%s  %s\n", n.ID, time.UnixMilli(n.Timestamp).Format("2006-01-02 15:04"))
		fmt.Fprintln(a.out, "  "+n.Content)
		if n.ReminderDate != "" {
			fmt.Fprintln(a.out, "  reminder:", n.ReminderDate)
		}
	}
	return nil
}

func (a *App) addNote(ctx context.Context, _ []string) error {
	content, err := GetMultiline(a.reader, "Enter note text", a.out)
	if err != nil {
		return err
	}
	reminder, err := a.prompt("Reminder date (YYYY-MM-DD, empty for none)")
	if err != nil {
		return err
	}
	if reminder != "" {
		if _, err := time.Parse(dateLayout, reminder); err != nil {
			return fmt.Errorf("%w: bad date %q", common.ErrInvalidValue, reminder)
		}
	}

	n := models.Note{
		ID:           models.NewID(),
		Content:      content,
		ReminderDate: reminder,
		Timestamp:    time.Now().UnixMilli(),
	}
	if err := a.data.Notes.Save(ctx, n); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved", n.ID)
	return nil
}

func (a *App) delNote(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "note")
	if err != nil {
		return err
	}
	if err := a.data.Notes.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", id)
	return nil
}

func (a *App) alarms(ctx context.Context, _ []string) error {
	list := a.data.Alarms.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No alarms")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tTYPE\tTIME\tDATE\tON\tLABEL")
	for _, al := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", al.ID, al.Type, al.Time, al.Date, yesNo(al.Enabled), al.Label)
	}
	return tw.Flush()
}

func (a *App) addAlarm(ctx context.Context, _ []string) error {
	typ, err := a.choose("Alarm type",
		string(models.AlarmWake), string(models.AlarmSleep), string(models.AlarmRest), string(models.AlarmScreentime))
	if err != nil {
		return err
	}
	at, err := a.prompt("Time (HH:MM)")
	if err != nil {
		return err
	}
	if _, err := time.Parse(clockLayout, at); err != nil {
		return fmt.Errorf("%w: bad time %q", common.ErrInvalidValue, at)
	}
	date, err := a.prompt("Only on date (YYYY-MM-DD, empty for every day)")
	if err != nil {
		return err
	}
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return fmt.Errorf("%w: bad date %q", common.ErrInvalidValue, date)
		}
	}
	label, err := a.prompt("Label")
	if err != nil {
		return err
	}

	al := models.Alarm{
		ID:      models.NewID(),
		Type:    models.AlarmType(typ),
		Time:    at,
		Date:    date,
		Enabled: true,
		Label:   label,
	}
	if err := a.data.Alarms.Save(ctx, al); err != nil {
		return err
	}

	if err := a.data.Notifications.Add(ctx, models.AppNotification{
		ID:        models.NewID(),
		Type:      models.NotificationAlarm,
		Title:     "Alarm set",
		Message:   fmt.Sprintf("%s alarm at %s", al.Type, al.Time),
		Timestamp: time.Now().UnixMilli(),
	}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Saved", al.ID)
	return nil
}

func (a *App) toggleAlarm(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "alarm")
	if err != nil {
		return err
	}
	al, err := a.data.Alarms.Toggle(ctx, id)
	if err != nil {
		return err
	}
	state := "disabled"
	if al.Enabled {
		state = "enabled"
	}
	fmt.Fprintf(a.out, "Alarm %s %s\n", al.ID, state)
	return nil
}

func (a *App) delAlarm(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "alarm")
	if err != nil {
		return err
	}
	if err := a.data.Alarms.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", id)
	return nil
}

func (a *App) cars(ctx context.Context, _ []string) error {
	list := a.data.Vehicle.List(ctx)
	if len(list) > 0 {
		tw := a.table()
		fmt.Fprintln(tw, "ID\tTYPE\tITEM\tDATE\tSTATUS\tCOST")
		for _, c := range list {
			cost := ""
			if c.Cost != nil {
				cost = c.Cost.StringFixed(2)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Type, c.Item, c.Date, c.Status, cost)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.out, "Vehicle health: %d%%\n", a.data.Vehicle.HealthScore(ctx))
	return nil
}

func (a *App) addCar(ctx context.Context, _ []string) error {
	typ, err := a.choose("Check type",
		string(models.CarCheckMaintenance), string(models.CarCheckDaily), string(models.CarCheckRepair))
	if err != nil {
		return err
	}
	item, err := a.prompt("Item (e.g. Tyres, Oil)")
	if err != nil {
		return err
	}
	date, err := a.readDate("Date")
	if err != nil {
		return err
	}
	status, err := a.choose("Status", string(models.CarCheckCompleted), string(models.CarCheckPending))
	if err != nil {
		return err
	}
	rawCost, err := a.prompt("Cost (empty for none)")
	if err != nil {
		return err
	}

	c := models.CarCheck{
		ID:     models.NewID(),
		Type:   models.CarCheckType(typ),
		Item:   item,
		Date:   date,
		Status: models.CarCheckStatus(status),
	}
	if rawCost != "" {
		cost, err := parseAmount(rawCost)
		if err != nil {
			return err
		}
		c.Cost = &cost
	}

	if err := a.data.Vehicle.Save(ctx, c); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved", c.ID)
	return nil
}

func (a *App) health(ctx context.Context, _ []string) error {
	list := a.data.Health.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No health logs")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tTYPE\tDATE\tVALUE\tDESCRIPTION")
	for _, l := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.Type, l.Date, l.Value, l.Description)
	}
	return tw.Flush()
}

func (a *App) addHealth(ctx context.Context, _ []string) error {
	typ, err := a.choose("Log type",
		string(models.HealthExercise), string(models.HealthWater), string(models.HealthSleep), string(models.HealthCheckup))
	if err != nil {
		return err
	}
	desc, err := a.prompt("Description")
	if err != nil {
		return err
	}
	date, err := a.readDate("Date")
	if err != nil {
		return err
	}
	value, err := a.prompt("Value (e.g. 2L, 7h, empty for none)")
	if err != nil {
		return err
	}

	l := models.HealthLog{
		ID:          models.NewID(),
		Type:        models.HealthLogType(typ),
		Description: desc,
		Date:        date,
		Value:       value,
	}
	if err := a.data.Health.Save(ctx, l); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved", l.ID)
	return nil
}
