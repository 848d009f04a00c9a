package domain

import "maps"

// FieldKey names one query parameter held for a view.
type FieldKey = string

const (
	FieldGranularity     FieldKey = "granularity"
	FieldStartDate       FieldKey = "start_date"
	FieldEndDate         FieldKey = "end_date"
	FieldBillingProvider FieldKey = "billing_provider"
	FieldSLA             FieldKey = "sla"
	FieldUOM             FieldKey = "uom"
	FieldUsage           FieldKey = "usage"
	FieldDisplayName     FieldKey = "display_name"
	FieldLimit           FieldKey = "limit"
	FieldOffset          FieldKey = "offset"
	FieldDirection       FieldKey = "direction"
	FieldSort            FieldKey = "sort"
)

// Query holds the parameters of a single view.
type Query map[FieldKey]any

// ViewQueries maps a view id to its query parameters.
type ViewQueries map[string]Query

// Product holds the product selection shared by every view.
type Product struct {
	Config  any            `json:"config,omitempty"`
	Variant map[string]any `json:"variant,omitempty"`
}

// QueryState is the immutable snapshot of every view-scoped query. A snapshot
// is never modified after it has been handed out; transitions allocate new
// maps for whatever they touch and share the rest.
type QueryState struct {
	Query                       ViewQueries `json:"query"`
	GraphTallyQuery             ViewQueries `json:"graphTallyQuery"`
	InventoryGuestsQuery        ViewQueries `json:"inventoryGuestsQuery"`
	InventoryHostsQuery         ViewQueries `json:"inventoryHostsQuery"`
	InventorySubscriptionsQuery ViewQueries `json:"inventorySubscriptionsQuery"`
	Product                     Product     `json:"product"`
}

// NewQueryState returns the empty initial state.
func NewQueryState() *QueryState {
	return &QueryState{
		Query:                       ViewQueries{},
		GraphTallyQuery:             ViewQueries{},
		InventoryGuestsQuery:        ViewQueries{},
		InventoryHostsQuery:         ViewQueries{},
		InventorySubscriptionsQuery: ViewQueries{},
	}
}

// Clone returns a copy that shares no maps with s. Field values themselves are
// copied shallowly.
func (s *QueryState) Clone() *QueryState {
	if s == nil {
		return nil
	}
	return &QueryState{
		Query:                       s.Query.clone(),
		GraphTallyQuery:             s.GraphTallyQuery.clone(),
		InventoryGuestsQuery:        s.InventoryGuestsQuery.clone(),
		InventoryHostsQuery:         s.InventoryHostsQuery.clone(),
		InventorySubscriptionsQuery: s.InventorySubscriptionsQuery.clone(),
		Product: Product{
			Config:  s.Product.Config,
			Variant: maps.Clone(s.Product.Variant),
		},
	}
}

func (v ViewQueries) clone() ViewQueries {
	out := make(ViewQueries, len(v))
	for id, q := range v {
		out[id] = maps.Clone(q)
	}
	return out
}
