package scheduler

import "time"

const (
	WarmTreeCache    = "warm-tree-cache"
	WarmChapterCache = "warm-chapter-cache"
)

type Task struct {
	ID         string
	Type       string
	Data       any
	Retries    int
	MaxRetries int
	ExecuteAt  time.Time
	CreatedAt  time.Time
}

type TaskChapterData struct {
	ChapterNumber int
}
