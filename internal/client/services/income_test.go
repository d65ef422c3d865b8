package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, date, amount string, typ models.RecordType) models.IncomeRecord {
	return models.IncomeRecord{ID: id, Date: date, Source: "src-" + id, Amount: decimal.RequireFromString(amount), Type: typ, Category: "cat"}
}

func localIncome(t *testing.T, f *fixture) []models.IncomeRecord {
	t.Helper()
	list, err := localstore.LoadList[models.IncomeRecord](context.Background(), f.store, keyIncome)
	require.NoError(t, err)
	return list
}

func ids(records []models.IncomeRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestIncome_UpsertIsIdempotentByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	require.NoError(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "10", models.RecordIncome)))
	require.NoError(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "99.95", models.RecordIncome)))

	list := localIncome(t, f)
	require.Len(t, list, 1)
	assert.True(t, list[0].Amount.Equal(decimal.RequireFromString("99.95")))
}

func TestIncome_LocalOrderIsPrependListIsDateDesc(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	require.NoError(t, f.svc.Income.Upsert(ctx, rec("old", "2025-01-01", "1", models.RecordIncome)))
	require.NoError(t, f.svc.Income.Upsert(ctx, rec("new", "2025-03-01", "1", models.RecordIncome)))
	require.NoError(t, f.svc.Income.Upsert(ctx, rec("mid", "2025-02-01", "1", models.RecordIncome)))

	assert.Equal(t, []string{"mid", "new", "old"}, ids(localIncome(t, f)))
	assert.Equal(t, []string{"new", "mid", "old"}, ids(f.svc.Income.List(ctx)))
}

func TestIncome_UnconfiguredNeverContactsRemote(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	rc.configured = false
	f := newFixture(t, rc)

	require.NoError(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "5", models.RecordIncome)))
	require.NoError(t, f.svc.Income.Delete(ctx, "zzz"))
	list := f.svc.Income.List(ctx)

	assert.Equal(t, localIncome(t, f), list)
	assert.Zero(t, rc.totalCalls())
}

func TestIncome_ListFromRemote(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	rc.identity = &remote.Identity{ID: "u-1"}
	rc.income = []remote.IncomeRow{
		{ID: "r1", UserID: "u-1", Date: "2025-01-05", Amount: decimal.NewFromInt(10), Type: "income"},
		{ID: "r2", UserID: "u-1", Date: "2025-02-05", Amount: decimal.NewFromInt(3), Type: "expense"},
		{ID: "x", UserID: "u-2", Date: "2025-02-06", Amount: decimal.NewFromInt(1), Type: "income"},
	}
	f := newFixture(t, rc)
	require.NoError(t, f.store.Set(ctx, keyIncome, []models.IncomeRecord{rec("local", "2030-01-01", "1", models.RecordIncome)}))

	list := f.svc.Income.List(ctx)
	assert.Equal(t, []string{"r2", "r1"}, ids(list))
	assert.Equal(t, models.RecordExpense, list[0].Type)
}

func TestIncome_ListFallsBackOnError(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	rc.identity = &remote.Identity{ID: "u-1"}
	rc.listErr = errRemoteDown
	f := newFixture(t, rc)
	require.NoError(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "5", models.RecordIncome)))

	assert.Equal(t, []string{"a"}, ids(f.svc.Income.List(ctx)))
}

func TestIncome_ListNoSessionSkipsRemoteRows(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	f := newFixture(t, rc)

	assert.Empty(t, f.svc.Income.List(ctx))
	assert.Zero(t, rc.called("ListIncome"))
}

func TestIncome_UpsertMirrorsWithOwner(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	rc.identity = &remote.Identity{ID: "u-1"}
	f := newFixture(t, rc)

	require.NoError(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "12.5", models.RecordIncome)))

	require.Len(t, rc.income, 1)
	assert.Equal(t, "u-1", rc.income[0].UserID)
	assert.Equal(t, "income", rc.income[0].Type)
}

func TestIncome_UpsertWithoutSessionIsLocalOnly(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	f := newFixture(t, rc)

	require.NoError(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "1", models.RecordIncome)))
	assert.Len(t, localIncome(t, f), 1)
	assert.Zero(t, rc.called("UpsertIncome"))
}

func TestIncome_UpsertSurvivesRemoteFailure(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	rc.identity = &remote.Identity{ID: "u-1"}
	rc.writeErr = errRemoteDown
	f := newFixture(t, rc)

	require.NoError(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "1", models.RecordIncome)))
	assert.Len(t, localIncome(t, f), 1)
}

func TestIncome_DeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	records := []models.IncomeRecord{
		rec("a", "2025-01-01", "100", models.RecordIncome),
		rec("b", "2025-01-02", "40", models.RecordExpense),
		rec("c", "2025-01-03", "25", models.RecordExpense),
	}
	require.NoError(t, f.store.Set(ctx, keyIncome, records))

	require.NoError(t, f.svc.Income.Delete(ctx, "b"))

	assert.Equal(t, []models.IncomeRecord{records[0], records[2]}, localIncome(t, f))
}

func TestIncome_DeleteIsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	rc.identity = &remote.Identity{ID: "u-1"}
	rc.income = []remote.IncomeRow{
		{ID: "mine", UserID: "u-1"},
		{ID: "theirs", UserID: "u-2"},
	}
	f := newFixture(t, rc)

	require.NoError(t, f.svc.Income.Delete(ctx, "mine"))
	require.NoError(t, f.svc.Income.Delete(ctx, "theirs"))

	require.Len(t, rc.income, 1)
	assert.Equal(t, "theirs", rc.income[0].ID)
}

func TestIncome_DeleteWithoutSessionSkipsRemote(t *testing.T) {
	ctx := context.Background()
	rc := newFakeRemote()
	f := newFixture(t, rc)

	require.NoError(t, f.svc.Income.Delete(ctx, "a"))
	assert.Zero(t, rc.called("DeleteIncome"))
}

func TestIncome_Summary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	require.NoError(t, f.store.Set(ctx, keyIncome, []models.IncomeRecord{
		rec("a", "2025-01-01", "100", models.RecordIncome),
		rec("b", "2025-01-02", "40", models.RecordExpense),
		rec("c", "2025-01-03", "25", models.RecordExpense),
	}))

	s := f.svc.Income.Summary(ctx)
	assert.True(t, s.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Expenses.Equal(decimal.NewFromInt(65)))
	assert.True(t, s.Savings.Equal(decimal.NewFromInt(35)))

	// never cached
	require.NoError(t, f.svc.Income.Upsert(ctx, rec("d", "2025-01-04", "5", models.RecordIncome)))
	assert.True(t, f.svc.Income.Summary(ctx).Savings.Equal(decimal.NewFromInt(40)))
}

func TestIncome_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	assert.ErrorIs(t, f.svc.Income.Upsert(ctx, rec("", "2025-01-01", "1", models.RecordIncome)), common.ErrEmptyID)
	assert.ErrorIs(t, f.svc.Income.Upsert(ctx, rec("a", "2025-01-01", "1", "gift")), common.ErrInvalidValue)
	assert.ErrorIs(t, f.svc.Income.Delete(ctx, ""), common.ErrEmptyID)
	assert.Empty(t, localIncome(t, f))
}

func TestIncome_ConcurrentUpsertsKeepAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, f.svc.Income.Upsert(ctx, rec(fmt.Sprintf("r%d", i), "2025-01-01", "1", models.RecordIncome)))
		}(i)
	}
	wg.Wait()

	assert.Len(t, localIncome(t, f), 10)
}
