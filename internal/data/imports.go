package data

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// ImportPlan is a fully resolved batch ready to commit: entries in document
// order (parents before children) plus the scripture index rows keyed by
// entry. The import service builds plans; this model only persists them.
type ImportPlan struct {
	Entries []*Entry
	Rows    map[uuid.UUID][]*ScriptureIndexRow
}

type ImportModel interface {
	Commit(ctx context.Context, plan *ImportPlan) error
}

type importModel struct {
	DB      *sql.DB
	entries *entryModel
	index   *scriptureIndexModel
}

func NewImportModel(db *sql.DB) *importModel {
	return &importModel{
		DB:      db,
		entries: NewEntryModel(db),
		index:   NewScriptureIndexModel(db),
	}
}

// Commit writes the whole plan in one transaction. Either the full corpus
// lands or none of it does; context cancellation mid-batch rolls back.
// Index rows for every planned entry are replaced, so re-running an
// unchanged batch leaves the same ids in place.
func (m *importModel) Commit(ctx context.Context, plan *ImportPlan) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range plan.Entries {
		if err := m.entries.UpsertTx(ctx, tx, e); err != nil {
			return err
		}
	}

	for _, e := range plan.Entries {
		if err := m.index.ReplaceForEntryTx(ctx, tx, e.ID, plan.Rows[e.ID]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
