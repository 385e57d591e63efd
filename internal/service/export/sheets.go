package export

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/record"
)

const (
	queueSize     = 256
	appendTimeout = 30 * time.Second
)

// RowAppender is the sheet store rows are mirrored to.
type RowAppender interface {
	AppendRows(ctx context.Context, sheet string, rows [][]any) error
}

type job struct {
	sheet string
	row   []any
}

// SheetMirror appends one row per committed mutation to the tab named after
// the entity. Rows are written by a single background worker; when the queue
// is full rows are dropped and logged.
type SheetMirror struct {
	repo   RowAppender
	queue  chan job
	logger *zap.Logger
	now    func() time.Time

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewSheetMirror builds a mirror writing to repo.
func NewSheetMirror(repo RowAppender, logger *zap.Logger) *SheetMirror {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetMirror{
		repo:   repo,
		queue:  make(chan job, queueSize),
		logger: logger,
		now:    time.Now,
	}
}

// Start launches the worker. It returns when ctx is cancelled or Close is
// called and the queue is drained.
func (m *SheetMirror) Start(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case j, ok := <-m.queue:
				if !ok {
					return
				}
				m.write(ctx, j)
			}
		}
	}()
}

// Close stops accepting rows and waits for the worker to finish.
func (m *SheetMirror) Close() {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.queue)
	}
	m.mu.Unlock()
	m.wg.Wait()
}

func (m *SheetMirror) write(ctx context.Context, j job) {
	ctx, cancel := context.WithTimeout(ctx, appendTimeout)
	defer cancel()

	if err := m.repo.AppendRows(ctx, j.sheet, [][]any{j.row}); err != nil {
		m.logger.Error("sheet mirror append failed", zap.String("sheet", j.sheet), zap.Error(err))
	}
}

func (m *SheetMirror) enqueue(sheet string, row []any) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	select {
	case m.queue <- job{sheet: sheet, row: row}:
	default:
		m.logger.Warn("sheet mirror queue full, row dropped", zap.String("sheet", sheet))
	}
}

// Mirror subscribes mirror to every commit of manager. Each row carries the
// commit time, the event kind and the record id before the schema columns.
func Mirror[T record.Record](mirror *SheetMirror, manager *record.Manager[T]) {
	schema := manager.Schema()
	manager.Subscribe(func(ev record.Event[T]) {
		row := append([]any{
			mirror.now().Format(time.RFC3339),
			string(ev.Kind),
			int64(ev.Record.RecordID()),
		}, schema.Row(ev.Record)...)
		mirror.enqueue(schema.Entity, row)
	})
}
