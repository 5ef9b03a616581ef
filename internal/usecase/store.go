// Package usecase composes the filesystem archive and the relational index
// into the assignment store operations consumed by the CLI and MCP surfaces.
package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/course-kit/coursekit/internal/database"
)

// Store orchestrates the dual-representation persistence: the archive on
// disk is the source of truth for content, the SQLite index serves queries.
// Mutations write the filesystem strictly before committing the relational
// transaction, so a database failure leaves at worst an unreferenced archive
// folder that Reconcile repairs.
type Store struct {
	courseRoot string
	dbCtx      *database.Context
	logger     *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store for one course. The course root is explicit so
// operations stay testable and two course sessions never share state.
func NewStore(courseRoot string, dbCtx *database.Context, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		courseRoot: courseRoot,
		dbCtx:      dbCtx,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
	}
}

// lockID serializes in-flight operations on one assignment ID so two
// concurrent saves cannot interleave their sync and prune steps.
func (s *Store) lockID(id string) func() {
	s.mu.Lock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
