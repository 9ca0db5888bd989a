package scheduler

import (
	"container/heap"
	"log/slog"
	"sync"
	"time"
)

// Warmer refreshes cached payloads. Implemented by the theology service;
// keeping it an interface here avoids an import cycle and makes the
// scheduler testable without redis.
type Warmer interface {
	WarmTree() error
	WarmChapter(chapterNumber int) error
}

type Scheduler struct {
	NumWorkers   int
	TaskChannel  chan Task
	DelayedQueue *PriorityQueue
	DeadQueue    []Task
	Warmer       Warmer
	Logger       *slog.Logger
	mu           *sync.Mutex
}

func NewScheduler(numWorkers int, warmer Warmer, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		TaskChannel:  make(chan Task, 100),
		DelayedQueue: BuildMinHeap(),
		NumWorkers:   numWorkers,
		Warmer:       warmer,
		Logger:       logger,
		mu:           &sync.Mutex{},
	}
}

func (s *Scheduler) Submit(task Task) {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	s.TaskChannel <- task
}

func (s *Scheduler) Start() {
	for i := 0; i < s.NumWorkers; i++ {
		go s.worker(s.TaskChannel)
	}

	go s.processDelayedTasks()
}

func (s *Scheduler) worker(taskChannel <-chan Task) {
	for task := range taskChannel {
		s.processTask(task)
	}
}

func (s *Scheduler) processTask(task Task) {
	if task.Retries >= task.MaxRetries && task.MaxRetries > 0 {
		s.mu.Lock()
		s.DeadQueue = append(s.DeadQueue, task)
		s.mu.Unlock()
		return
	}

	var err error
	switch task.Type {
	case WarmTreeCache:
		err = s.Warmer.WarmTree()

	case WarmChapterCache:
		data, ok := task.Data.(TaskChapterData)
		if !ok {
			s.Logger.Error("bad task payload", "task", task.ID, "type", task.Type)
			return
		}
		err = s.Warmer.WarmChapter(data.ChapterNumber)

	default:
		s.Logger.Error("unknown task type", "task", task.ID, "type", task.Type)
		return
	}

	if err != nil {
		s.Logger.Error("cache warm failed",
			"task", task.ID,
			"type", task.Type,
			"retries", task.Retries,
			"error", err,
		)
		s.scheduleRetry(task)
	}
}

// scheduleRetry re-queues a failed task with doubling backoff from its
// creation time: 2, 4, then 8 minutes.
func (s *Scheduler) scheduleRetry(task Task) {
	if task.Retries >= task.MaxRetries {
		s.mu.Lock()
		s.DeadQueue = append(s.DeadQueue, task)
		s.mu.Unlock()
		return
	}

	task.Retries++
	backoff := time.Duration(1<<task.Retries) * time.Minute
	task.ExecuteAt = task.CreatedAt.Add(backoff)

	s.mu.Lock()
	heap.Push(s.DelayedQueue, &task)
	s.mu.Unlock()
}

func (s *Scheduler) processDelayedTasks() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		for {
			s.mu.Lock()
			next := s.DelayedQueue.Peek()
			if next == nil || next.ExecuteAt.After(time.Now()) {
				s.mu.Unlock()
				break
			}
			task := heap.Pop(s.DelayedQueue).(*Task)
			s.mu.Unlock()

			s.TaskChannel <- *task
		}
	}
}
