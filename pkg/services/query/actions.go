package query

import (
	"github.com/de-tools/report-views/pkg/models/domain"
)

// Kind tags an Action.
type Kind string

const (
	KindSetQuery                 Kind = "SET_QUERY"
	KindClearQuery               Kind = "SET_QUERY_CLEAR"
	KindSetRHSMQuery             Kind = "SET_QUERY_RHSM"
	KindSetInventoryQuery        Kind = "SET_QUERY_INVENTORY"
	KindResetInventoryList       Kind = "SET_QUERY_RESET_INVENTORY_LIST"
	KindClearInventoryList       Kind = "SET_QUERY_CLEAR_INVENTORY_LIST"
	KindClearInventoryGuestsList Kind = "SET_QUERY_CLEAR_INVENTORY_GUESTS_LIST"
	KindResetProductGroup        Kind = "SET_PRODUCT_VARIANT_QUERY_RESET_ALL"
	KindSetProduct               Kind = "SET_PRODUCT"
	KindSetProductVariant        Kind = "SET_PRODUCT_VARIANT"
)

// Kinds lists every action kind Reduce understands.
var Kinds = []Kind{
	KindSetQuery,
	KindClearQuery,
	KindSetRHSMQuery,
	KindSetInventoryQuery,
	KindResetInventoryList,
	KindClearInventoryList,
	KindClearInventoryGuestsList,
	KindResetProductGroup,
	KindSetProduct,
	KindSetProductVariant,
}

// Action is a state transition request. The set of implementations is closed
// to this package.
type Action interface {
	Kind() Kind
	sealed()
}

// Inventory names one of the three inventory query mappings.
type Inventory string

const (
	InventoryGuests        Inventory = "guests"
	InventoryHosts         Inventory = "hosts"
	InventorySubscriptions Inventory = "subscriptions"
)

// inventoryFields are the fields SetInventoryQuery accepts for each inventory.
var inventoryFields = map[Inventory]map[domain.FieldKey]bool{
	InventoryGuests: {
		domain.FieldLimit:  true,
		domain.FieldOffset: true,
	},
	InventoryHosts: {
		domain.FieldDisplayName: true,
		domain.FieldLimit:       true,
		domain.FieldOffset:      true,
		domain.FieldDirection:   true,
		domain.FieldSort:        true,
	},
	InventorySubscriptions: {
		domain.FieldLimit:     true,
		domain.FieldOffset:    true,
		domain.FieldDirection: true,
		domain.FieldSort:      true,
	},
}

// rhsmFields are the fields SetRHSMQuery accepts; granularity is kept with the
// graph tally query, everything else with the general query.
var rhsmFields = map[domain.FieldKey]bool{
	domain.FieldGranularity:     true,
	domain.FieldStartDate:       true,
	domain.FieldEndDate:         true,
	domain.FieldBillingProvider: true,
	domain.FieldSLA:             true,
	domain.FieldUOM:             true,
	domain.FieldUsage:           true,
}

// SetQuery sets one field of a view's general query.
type SetQuery struct {
	ViewID string          `json:"viewId"`
	Field  domain.FieldKey `json:"filter"`
	Value  any             `json:"value"`
}

// ClearQuery merges ClearFilters over a view's general query.
type ClearQuery struct {
	ViewID       string       `json:"viewId"`
	ClearFilters domain.Query `json:"clearFilters"`
}

// SetRHSMQuery sets one reporting API parameter for a view.
type SetRHSMQuery struct {
	ViewID string          `json:"viewId"`
	Field  domain.FieldKey `json:"field"`
	Value  any             `json:"value"`
}

// SetInventoryQuery sets one field of a view's inventory query.
type SetInventoryQuery struct {
	Inventory Inventory       `json:"inventory"`
	ViewID    string          `json:"viewId"`
	Field     domain.FieldKey `json:"field"`
	Value     any             `json:"value"`
}

// ResetInventoryList rewinds paging and drops sorting on the host and
// subscription inventories governed by ViewID.
type ResetInventoryList struct {
	ViewID string `json:"viewId"`
}

// ClearInventoryList rewinds paging on the host and subscription inventories
// governed by ViewID.
type ClearInventoryList struct {
	ViewID string `json:"viewId"`
}

// ClearInventoryGuestsList rewinds paging on the guest inventory governed by
// ViewID.
type ClearInventoryGuestsList struct {
	ViewID string `json:"viewId"`
}

// ResetProductGroup drops every query of every view owned by ProductGroup.
type ResetProductGroup struct {
	ProductGroup string `json:"productGroup"`
}

// SetProduct replaces the product configuration.
type SetProduct struct {
	Config any `json:"config"`
}

// SetProductVariant records the variant selected for a product group.
type SetProductVariant struct {
	ProductGroup string `json:"productGroup"`
	Variant      any    `json:"variant"`
}

func (SetQuery) Kind() Kind                 { return KindSetQuery }
func (ClearQuery) Kind() Kind               { return KindClearQuery }
func (SetRHSMQuery) Kind() Kind             { return KindSetRHSMQuery }
func (SetInventoryQuery) Kind() Kind        { return KindSetInventoryQuery }
func (ResetInventoryList) Kind() Kind       { return KindResetInventoryList }
func (ClearInventoryList) Kind() Kind       { return KindClearInventoryList }
func (ClearInventoryGuestsList) Kind() Kind { return KindClearInventoryGuestsList }
func (ResetProductGroup) Kind() Kind        { return KindResetProductGroup }
func (SetProduct) Kind() Kind               { return KindSetProduct }
func (SetProductVariant) Kind() Kind        { return KindSetProductVariant }

func (SetQuery) sealed()                 {}
func (ClearQuery) sealed()               {}
func (SetRHSMQuery) sealed()             {}
func (SetInventoryQuery) sealed()        {}
func (ResetInventoryList) sealed()       {}
func (ClearInventoryList) sealed()       {}
func (ClearInventoryGuestsList) sealed() {}
func (ResetProductGroup) sealed()        {}
func (SetProduct) sealed()               {}
func (SetProductVariant) sealed()        {}

// SetGranularity is shorthand for the graph tally granularity setter.
func SetGranularity(viewID string, g domain.Granularity) SetRHSMQuery {
	return SetRHSMQuery{ViewID: viewID, Field: domain.FieldGranularity, Value: g}
}

// SetDateRange returns the pair of setters for a view's start and end date.
func SetDateRange(viewID string, r domain.DateRange) []Action {
	return []Action{
		SetRHSMQuery{ViewID: viewID, Field: domain.FieldStartDate, Value: r.StartDate},
		SetRHSMQuery{ViewID: viewID, Field: domain.FieldEndDate, Value: r.EndDate},
	}
}
