// Package localstore is the durable on-device store of the Driver Helper
// client: a prefixed mapping from string keys to JSON blobs kept in a SQLite
// file.
//
// # Data Model
//
// One row per key in table kv. Keys are namespaced with a fixed prefix
// (common.LocalKeyPrefix by default), values hold the entity or entity list
// in its natural JSON shape.
//
// # Missing and corrupt values
//
// A missing key is not an error: Get reports found=false and LoadList
// returns an empty list. A blob that no longer decodes yields
// common.ErrCorruptValue; UpdateList starts over from an empty list in that
// case.
//
// # Concurrency
//
// UpdateList, Set and Remove hold a per-key lock, so read-modify-write
// sequences issued from one process cannot interleave. Nothing coordinates
// separate processes sharing the same file.
//
// Typical Usage
//
//	db, _ := localstore.InitDatabase(ctx, "driverhelper.db")
//	store := localstore.New(db, common.LocalKeyPrefix)
//	_ = localstore.UpdateList(ctx, store, "income", func(cur []models.IncomeRecord) []models.IncomeRecord {
//		return append([]models.IncomeRecord{rec}, cur...)
//	})
package localstore
