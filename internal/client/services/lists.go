package services

import (
	"context"

	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
)

// upsertByID drops any item with the same id and puts item first.
func upsertByID[T models.Identified](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	for _, x := range list {
		if x.EntityID() != item.EntityID() {
			out = append(out, x)
		}
	}
	return out
}

// removeByID keeps every item except the one with id, preserving order.
func removeByID[T models.Identified](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, x := range list {
		if x.EntityID() != id {
			out = append(out, x)
		}
	}
	return out
}

// localList is a list persisted only in the local store.
type localList[T models.Identified] struct {
	h      *hybrid
	key    string
	domain string
}

func (l localList[T]) list(ctx context.Context) []T {
	items, err := localstore.LoadList[T](ctx, l.h.local, l.key)
	l.h.localFailed(ctx, l.domain, "list", err)
	l.h.servedLocal(l.domain, "list")
	return items
}

func (l localList[T]) update(ctx context.Context, op string, fn func([]T) []T) {
	err := localstore.UpdateList(ctx, l.h.local, l.key, fn)
	l.h.localFailed(ctx, l.domain, op, err)
	l.h.servedLocal(l.domain, op)
}

func (l localList[T]) save(ctx context.Context, item T) error {
	if item.EntityID() == "" {
		return common.ErrEmptyID
	}
	l.update(ctx, "save", func(cur []T) []T { return upsertByID(cur, item) })
	return nil
}

func (l localList[T]) delete(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrEmptyID
	}
	l.update(ctx, "delete", func(cur []T) []T { return removeByID(cur, id) })
	return nil
}

func (l localList[T]) replaceAll(ctx context.Context, items []T) {
	l.update(ctx, "replace", func([]T) []T { return items })
}
