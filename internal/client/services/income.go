package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
)

// IncomeService keeps the driver's earnings and expenses.
type IncomeService struct {
	h *hybrid
}

// List returns the records newest date first, from remote when a session
// exists and from the local store otherwise.
func (s *IncomeService) List(ctx context.Context) []models.IncomeRecord {
	records, out := attempt(ctx, s.h, domainIncome, "list", true, func(ctx context.Context, id *remote.Identity) ([]models.IncomeRecord, error) {
		rows, err := s.h.remote.ListIncome(ctx, id.ID)
		if err != nil {
			return nil, err
		}
		records := make([]models.IncomeRecord, 0, len(rows))
		for _, r := range rows {
			records = append(records, incomeFromRow(r))
		}
		return records, nil
	})

	if out != outcomeRemote {
		var err error
		records, err = localstore.LoadList[models.IncomeRecord](ctx, s.h.local, keyIncome)
		s.h.localFailed(ctx, domainIncome, "list", err)
		s.h.servedLocal(domainIncome, "list")
	}

	models.SortByDateDesc(records)
	return records
}

// Upsert stores r locally in place of any record with the same id, then
// mirrors it to the signed-in user's remote rows.
func (s *IncomeService) Upsert(ctx context.Context, r models.IncomeRecord) error {
	if r.ID == "" {
		return common.ErrEmptyID
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: record type %q", common.ErrInvalidValue, r.Type)
	}

	err := localstore.UpdateList(ctx, s.h.local, keyIncome, func(cur []models.IncomeRecord) []models.IncomeRecord {
		return upsertByID(cur, r)
	})
	s.h.localFailed(ctx, domainIncome, "upsert", err)
	s.h.servedLocal(domainIncome, "upsert")

	mirror(ctx, s.h, domainIncome, "upsert", true, func(ctx context.Context, id *remote.Identity) error {
		return s.h.remote.UpsertIncome(ctx, rowFromIncome(r, id.ID))
	})
	return nil
}

// Delete removes the record locally and, for the signed-in owner, remotely.
func (s *IncomeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrEmptyID
	}

	err := localstore.UpdateList(ctx, s.h.local, keyIncome, func(cur []models.IncomeRecord) []models.IncomeRecord {
		return removeByID(cur, id)
	})
	s.h.localFailed(ctx, domainIncome, "delete", err)
	s.h.servedLocal(domainIncome, "delete")

	mirror(ctx, s.h, domainIncome, "delete", true, func(ctx context.Context, ident *remote.Identity) error {
		return s.h.remote.DeleteIncome(ctx, ident.ID, id)
	})
	return nil
}

// Summary is recomputed from List on every call.
func (s *IncomeService) Summary(ctx context.Context) models.IncomeSummary {
	return models.Summarize(s.List(ctx))
}
