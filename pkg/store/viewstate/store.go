package viewstate

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/query"
)

// Store owns the current query state snapshot for a process. Writers are
// serialized; readers get the snapshot that was current when they asked.
type Store interface {
	State() *domain.QueryState
	Dispatch(ctx context.Context, action query.Action) *domain.QueryState
}

type memoryStore struct {
	reducer *query.Reducer

	mu    sync.RWMutex
	state *domain.QueryState
}

// NewStore returns a Store starting from the empty state.
func NewStore(reducer *query.Reducer) Store {
	return &memoryStore{
		reducer: reducer,
		state:   domain.NewQueryState(),
	}
}

func (s *memoryStore) State() *domain.QueryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *memoryStore) Dispatch(ctx context.Context, action query.Action) *domain.QueryState {
	logger := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.reducer.Reduce(s.state, action)
	changed := next != s.state
	s.state = next

	event := logger.Debug().
		Str("dispatch_id", ulid.Make().String()).
		Bool("changed", changed)
	if action != nil {
		event = event.Str("action", string(action.Kind()))
	}
	event.Msg("dispatched query action")

	return next
}
