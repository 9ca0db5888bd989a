package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

var ErrDuplicateTag = errors.New("a tag with this name already exists")

// Tag groups chapters; orthogonal to the hierarchy and editable after import.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagModel interface {
	GetAll() ([]*Tag, error)
	Insert(name string) (*Tag, error)
	Assign(chapterNumber int, tagID int64) error
	Unassign(chapterNumber int, tagID int64) error
	ChaptersByTag(name string) ([]*Entry, error)
}

type tagModel struct {
	DB *sql.DB
}

func NewTagModel(db *sql.DB) *tagModel {
	return &tagModel{DB: db}
}

func (m *tagModel) GetAll() ([]*Tag, error) {
	query := `SELECT id, name FROM tags ORDER BY name`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

func (m *tagModel) Insert(name string) (*Tag, error) {
	query := `INSERT INTO tags (name) VALUES ($1) RETURNING id`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t := Tag{Name: name}
	err := m.DB.QueryRowContext(ctx, query, name).Scan(&t.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrDuplicateTag
		}
		return nil, err
	}
	return &t, nil
}

func (m *tagModel) Assign(chapterNumber int, tagID int64) error {
	query := `
		INSERT INTO chapter_tags (chapter_number, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := m.DB.ExecContext(ctx, query, chapterNumber, tagID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return ErrRecordNotFound
		}
		return err
	}
	_, err = result.RowsAffected()
	return err
}

func (m *tagModel) Unassign(chapterNumber int, tagID int64) error {
	query := `DELETE FROM chapter_tags WHERE chapter_number = $1 AND tag_id = $2`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := m.DB.ExecContext(ctx, query, chapterNumber, tagID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (m *tagModel) ChaptersByTag(name string) ([]*Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE entry_type = 'chapter'
		  AND chapter_number IN (
			SELECT ct.chapter_number
			FROM chapter_tags ct
			JOIN tags t ON t.id = ct.tag_id
			WHERE t.name = $1
		  )
		ORDER BY sort_order, title`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters := []*Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return chapters, nil
}
