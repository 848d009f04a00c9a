// Package query holds the view query state transitions. Reduce is pure: it
// never mutates the state it is given and never performs I/O.
package query

import (
	"encoding/json"
	"maps"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/registry"
)

// Reducer applies actions to query state snapshots, resolving product groups
// and view ids through a product registry.
type Reducer struct {
	registry registry.Registry
}

// NewReducer returns a Reducer backed by reg. A nil reg behaves like an empty
// registry.
func NewReducer(reg registry.Registry) *Reducer {
	if reg == nil {
		reg = registry.New(nil)
	}
	return &Reducer{registry: reg}
}

// Reduce returns the state that follows action. Actions the reducer does not
// recognise, or that name an unknown field or inventory, return state itself.
func (r *Reducer) Reduce(state *domain.QueryState, action Action) *domain.QueryState {
	if state == nil {
		state = domain.NewQueryState()
	}

	next := *state

	switch a := action.(type) {
	case SetQuery:
		next.Query = setField(state.Query, a.ViewID, a.Field, a.Value)

	case ClearQuery:
		next.Query = mergeFields(state.Query, a.ViewID, a.ClearFilters)

	case SetRHSMQuery:
		if !rhsmFields[a.Field] {
			return state
		}
		if a.Field == domain.FieldGranularity {
			next.GraphTallyQuery = setField(state.GraphTallyQuery, a.ViewID, a.Field, a.Value)
		} else {
			next.Query = setField(state.Query, a.ViewID, a.Field, a.Value)
		}

	case SetInventoryQuery:
		if !inventoryFields[a.Inventory][a.Field] {
			return state
		}
		switch a.Inventory {
		case InventoryGuests:
			next.InventoryGuestsQuery = setField(state.InventoryGuestsQuery, a.ViewID, a.Field, a.Value)
		case InventoryHosts:
			next.InventoryHostsQuery = setField(state.InventoryHostsQuery, a.ViewID, a.Field, a.Value)
		case InventorySubscriptions:
			next.InventorySubscriptionsQuery = setField(state.InventorySubscriptionsQuery, a.ViewID, a.Field, a.Value)
		default:
			return state
		}

	case ResetInventoryList:
		next.InventoryHostsQuery = r.rewind(state.InventoryHostsQuery, a.ViewID, true)
		next.InventorySubscriptionsQuery = r.rewind(state.InventorySubscriptionsQuery, a.ViewID, true)

	case ClearInventoryList:
		next.InventoryHostsQuery = r.rewind(state.InventoryHostsQuery, a.ViewID, false)
		next.InventorySubscriptionsQuery = r.rewind(state.InventorySubscriptionsQuery, a.ViewID, false)

	case ClearInventoryGuestsList:
		next.InventoryGuestsQuery = r.rewind(state.InventoryGuestsQuery, a.ViewID, false)

	case ResetProductGroup:
		next.Query = r.dropGroup(state.Query, a.ProductGroup)
		next.GraphTallyQuery = r.dropGroup(state.GraphTallyQuery, a.ProductGroup)
		next.InventoryGuestsQuery = r.dropGroup(state.InventoryGuestsQuery, a.ProductGroup)
		next.InventoryHostsQuery = r.dropGroup(state.InventoryHostsQuery, a.ProductGroup)
		next.InventorySubscriptionsQuery = r.dropGroup(state.InventorySubscriptionsQuery, a.ProductGroup)

	case SetProduct:
		next.Product = domain.Product{Config: a.Config, Variant: state.Product.Variant}

	case SetProductVariant:
		variant := make(map[string]any, len(state.Product.Variant)+1)
		maps.Copy(variant, state.Product.Variant)
		variant[a.ProductGroup] = a.Variant
		next.Product = domain.Product{Config: state.Product.Config, Variant: variant}

	default:
		return state
	}

	return &next
}

// Resolve returns the view ids an id stands for in queries: the registry's
// views when it lists any, otherwise id itself when queries already holds it.
func Resolve(listed []string, queries domain.ViewQueries, id string) []string {
	if len(listed) > 0 {
		return listed
	}
	if _, ok := queries[id]; ok {
		return []string{id}
	}
	return nil
}

// rewind zeroes a numeric offset on every resolved view and, when dropSort is
// set, removes its direction and sort.
func (r *Reducer) rewind(queries domain.ViewQueries, viewID string, dropSort bool) domain.ViewQueries {
	out := cloneViews(queries)

	for _, id := range Resolve(r.registry.ViewsByID(viewID), queries, viewID) {
		q, ok := queries[id]
		if !ok {
			continue
		}

		updated := maps.Clone(q)
		if isNumber(updated[domain.FieldOffset]) {
			updated[domain.FieldOffset] = 0
		}
		if dropSort {
			delete(updated, domain.FieldDirection)
			delete(updated, domain.FieldSort)
		}
		out[id] = updated
	}

	return out
}

// dropGroup deletes every view resolved from a product group.
func (r *Reducer) dropGroup(queries domain.ViewQueries, group string) domain.ViewQueries {
	out := cloneViews(queries)
	for _, id := range Resolve(r.registry.ViewsByGroup(group), queries, group) {
		delete(out, id)
	}
	return out
}

func setField(queries domain.ViewQueries, viewID string, field domain.FieldKey, value any) domain.ViewQueries {
	return mergeFields(queries, viewID, domain.Query{field: value})
}

func mergeFields(queries domain.ViewQueries, viewID string, fields domain.Query) domain.ViewQueries {
	updated := make(domain.Query, len(queries[viewID])+len(fields))
	maps.Copy(updated, queries[viewID])
	maps.Copy(updated, fields)

	out := cloneViews(queries)
	out[viewID] = updated
	return out
}

// cloneViews copies the outer map only; per-view queries are shared until
// they are replaced.
func cloneViews(queries domain.ViewQueries) domain.ViewQueries {
	out := make(domain.ViewQueries, len(queries)+1)
	maps.Copy(out, queries)
	return out
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}
