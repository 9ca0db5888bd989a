package data

import (
	"database/sql"
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrEditConflict   = errors.New("edit conflict")
)

type Models struct {
	Entries        EntryModel
	ScriptureIndex ScriptureIndexModel
	Tags           TagModel
	Imports        ImportModel
}

func NewModels(db *sql.DB) Models {
	return Models{
		Entries:        NewEntryModel(db),
		ScriptureIndex: NewScriptureIndexModel(db),
		Tags:           NewTagModel(db),
		Imports:        NewImportModel(db),
	}
}
