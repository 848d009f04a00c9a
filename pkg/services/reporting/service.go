// Package reporting wires the clock, default windows, month index and query
// store together for a host process. Everything time-dependent is computed
// once, when the service is built.
package reporting

import (
	"context"
	"fmt"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/clock"
	"github.com/de-tools/report-views/pkg/services/config"
	"github.com/de-tools/report-views/pkg/services/i18n"
	"github.com/de-tools/report-views/pkg/services/monthindex"
	"github.com/de-tools/report-views/pkg/services/query"
	"github.com/de-tools/report-views/pkg/services/registry"
	"github.com/de-tools/report-views/pkg/services/timewindow"
	"github.com/de-tools/report-views/pkg/store/viewstate"
)

type Options struct {
	Clock      clock.Clock
	Registry   registry.Registry
	Translator i18n.Translator
}

type Service struct {
	registry   registry.Registry
	translator i18n.Translator
	windows    timewindow.Windows
	months     domain.MonthIndex
	store      viewstate.Store
}

// NewService snapshots opts.Clock once and derives every default from it.
func NewService(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = clock.New(clock.Settings{})
	}
	if opts.Registry == nil {
		opts.Registry = registry.New(nil)
	}
	if opts.Translator == nil {
		opts.Translator = i18n.Default()
	}

	now := opts.Clock.Now()
	windows := timewindow.NewWindows(now)

	return &Service{
		registry:   opts.Registry,
		translator: opts.Translator,
		windows:    windows,
		months:     monthindex.Build(windows.Yearly, now, opts.Translator),
		store:      viewstate.NewStore(query.NewReducer(opts.Registry)),
	}
}

// Bootstrap builds a Service from process settings, loading the product
// registry and locale catalog they point at.
func Bootstrap(settings *config.Settings) (*Service, error) {
	opts := Options{Clock: clock.New(settings.Clock())}

	if settings.ProductsPath != "" {
		reg, err := registry.Load(settings.ProductsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load product registry: %w", err)
		}
		opts.Registry = reg
	}

	if settings.LocalePath != "" {
		catalog, err := i18n.LoadCatalog(settings.LocalePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load locale: %w", err)
		}
		opts.Translator = catalog
	}

	return NewService(opts), nil
}

func (s *Service) Windows() timewindow.Windows {
	return s.windows
}

func (s *Service) Registry() registry.Registry {
	return s.registry
}

func (s *Service) Translator() i18n.Translator {
	return s.translator
}

func (s *Service) Store() viewstate.Store {
	return s.store
}

// Range returns the default window for g.
func (s *Service) Range(g domain.Granularity) domain.DateRange {
	return s.windows.Lookup(g)
}

// ComputeRange returns an ad hoc window against the service's anchor.
func (s *Service) ComputeRange(g domain.Granularity, offset int) domain.DateRange {
	return timewindow.ComputeRange(g, s.windows.Anchor, offset)
}

// Months returns the month picker index.
func (s *Service) Months() domain.MonthIndex {
	return s.months
}

// Month selects one bucket of the month picker index.
func (s *Service) Month(key string) (domain.MonthBucket, bool) {
	return monthindex.Select(s.months, key)
}

// ApplyGranularity records g for viewID and moves the view's date range to the
// default window for g.
func (s *Service) ApplyGranularity(ctx context.Context, viewID string, g domain.Granularity) *domain.QueryState {
	state := s.store.Dispatch(ctx, query.SetGranularity(viewID, g))
	for _, action := range query.SetDateRange(viewID, s.Range(g)) {
		state = s.store.Dispatch(ctx, action)
	}
	return state
}
