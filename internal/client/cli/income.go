package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// readDate reads an ISO date; an empty answer means today.
func (a *App) readDate(prompt string) (string, error) {
	s, err := a.prompt(prompt + " (YYYY-MM-DD, empty for today)")
	if err != nil {
		return "", err
	}
	if s == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: bad date %q", common.ErrInvalidValue, s)
	}
	return s, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad amount %q", common.ErrInvalidValue, s)
	}
	return d, nil
}

func (a *App) income(ctx context.Context, _ []string) error {
	records := a.data.Income.List(ctx)
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No records")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tAMOUNT\tSOURCE\tCATEGORY")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Date, r.Type, r.Amount.StringFixed(2), r.Source, r.Category)
	}
	return tw.Flush()
}

func (a *App) addIncome(ctx context.Context, _ []string) error {
	typ, err := a.choose("Record type", string(models.RecordIncome), string(models.RecordExpense))
	if err != nil {
		return err
	}
	raw, err := a.prompt("Amount")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}
	date, err := a.readDate("Date")
	if err != nil {
		return err
	}
	source, err := a.prompt("Source (e.g. Uber, Fuel)")
	if err != nil {
		return err
	}
	category, err := a.prompt("Category")
	if err != nil {
		return err
	}

	r := models.IncomeRecord{
		ID:       models.NewID(),
		Date:     date,
		Source:   source,
		Amount:   amount,
		Type:     models.RecordType(typ),
		Category: category,
	}
	if err := a.data.Income.Upsert(ctx, r); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved", r.ID)
	return nil
}

func (a *App) delIncome(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "record")
	if err != nil {
		return err
	}
	if err := a.data.Income.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", id)
	return nil
}

func (a *App) summary(ctx context.Context, _ []string) error {
	s := a.data.Income.Summary(ctx)
	fmt.Fprintf(a.out, "Income:   %s\n", s.Income.StringFixed(2))
	fmt.Fprintf(a.out, "Expenses: %s\n", s.Expenses.StringFixed(2))
	fmt.Fprintf(a.out, "Savings:  %s\n", s.Savings.StringFixed(2))
	return nil
}
