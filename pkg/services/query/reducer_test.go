package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/registry"
)

type mockRegistry struct {
	mock.Mock
}

func (m *mockRegistry) ViewsByGroup(group string) []string {
	args := m.Called(group)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *mockRegistry) ViewsByID(viewID string) []string {
	args := m.Called(viewID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *mockRegistry) Products() []domain.ProductConfig {
	args := m.Called()
	return args.Get(0).([]domain.ProductConfig)
}

type unknownAction struct{}

func (unknownAction) Kind() Kind { return "SOMETHING_ELSE" }
func (unknownAction) sealed()    {}

func testRegistry() registry.Registry {
	return registry.New([]domain.ProductConfig{
		{ProductID: "rhel-x86", ProductGroup: "RHEL", ViewID: "hostsA"},
		{ProductID: "rhel-arm", ProductGroup: "RHEL", ViewID: "hostsB"},
		{ProductID: "openshift", ProductGroup: "OpenShift", ViewID: "viewOpenShift"},
	})
}

func populatedState() *domain.QueryState {
	return &domain.QueryState{
		Query: domain.ViewQueries{
			"hostsA":        {"sla": "Premium", "uom": "Sockets"},
			"viewOpenShift": {"usage": "Production"},
		},
		GraphTallyQuery: domain.ViewQueries{
			"hostsA": {"granularity": domain.GranularityDaily},
		},
		InventoryGuestsQuery: domain.ViewQueries{
			"hostsA": {"offset": 10, "limit": 10},
		},
		InventoryHostsQuery: domain.ViewQueries{
			"hostsA":        {"offset": 40, "limit": 20, "direction": "asc", "sort": "last_seen"},
			"viewOpenShift": {"offset": 20, "sort": "cores"},
		},
		InventorySubscriptionsQuery: domain.ViewQueries{
			"viewOpenShift": {"offset": 5, "direction": "desc"},
		},
		Product: domain.Product{
			Config:  map[string]any{"productGroup": "RHEL"},
			Variant: map[string]any{"RHEL": "rhel-x86"},
		},
	}
}

func TestReduce_SetQuery(t *testing.T) {
	r := NewReducer(testRegistry())

	got := r.Reduce(domain.NewQueryState(), SetQuery{ViewID: "hosts", Field: domain.FieldSLA, Value: "Premium"})

	assert.Equal(t, domain.ViewQueries{"hosts": {"sla": "Premium"}}, got.Query)
	assert.Empty(t, got.GraphTallyQuery)
	assert.Empty(t, got.InventoryGuestsQuery)
	assert.Empty(t, got.InventoryHostsQuery)
	assert.Empty(t, got.InventorySubscriptionsQuery)
}

func TestReduce_SetQueryKeepsSiblings(t *testing.T) {
	r := NewReducer(testRegistry())

	got := r.Reduce(populatedState(), SetQuery{ViewID: "hostsA", Field: domain.FieldUsage, Value: "Development"})

	assert.Equal(t, domain.Query{"sla": "Premium", "uom": "Sockets", "usage": "Development"}, got.Query["hostsA"])
	assert.Equal(t, domain.Query{"usage": "Production"}, got.Query["viewOpenShift"])
}

func TestReduce_ClearQuery(t *testing.T) {
	r := NewReducer(testRegistry())

	tests := []struct {
		name     string
		filters  domain.Query
		expected domain.Query
	}{
		{
			name:     "merges defaults over existing fields",
			filters:  domain.Query{"sla": nil, "usage": ""},
			expected: domain.Query{"sla": nil, "uom": "Sockets", "usage": ""},
		},
		{
			name:     "empty filters leave the entry unchanged",
			filters:  domain.Query{},
			expected: domain.Query{"sla": "Premium", "uom": "Sockets"},
		},
		{
			name:     "nil filters leave the entry unchanged",
			filters:  nil,
			expected: domain.Query{"sla": "Premium", "uom": "Sockets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Reduce(populatedState(), ClearQuery{ViewID: "hostsA", ClearFilters: tt.filters})
			assert.Equal(t, tt.expected, got.Query["hostsA"])
		})
	}
}

func TestReduce_SetRHSMQuery(t *testing.T) {
	r := NewReducer(testRegistry())

	got := r.Reduce(domain.NewQueryState(), SetGranularity("hostsA", domain.GranularityWeekly))
	assert.Equal(t, domain.ViewQueries{"hostsA": {"granularity": domain.GranularityWeekly}}, got.GraphTallyQuery)
	assert.Empty(t, got.Query)

	for _, field := range []domain.FieldKey{
		domain.FieldStartDate,
		domain.FieldEndDate,
		domain.FieldBillingProvider,
		domain.FieldSLA,
		domain.FieldUOM,
		domain.FieldUsage,
	} {
		got := r.Reduce(domain.NewQueryState(), SetRHSMQuery{ViewID: "hostsA", Field: field, Value: "x"})
		assert.Equal(t, domain.ViewQueries{"hostsA": {field: "x"}}, got.Query, field)
		assert.Empty(t, got.GraphTallyQuery, field)
	}

	state := populatedState()
	assert.Same(t, state, r.Reduce(state, SetRHSMQuery{ViewID: "hostsA", Field: "colour", Value: "red"}))
}

func TestReduce_SetInventoryQuery(t *testing.T) {
	r := NewReducer(testRegistry())
	state := domain.NewQueryState()

	state = r.Reduce(state, SetInventoryQuery{Inventory: InventoryGuests, ViewID: "v", Field: domain.FieldLimit, Value: 10})
	state = r.Reduce(state, SetInventoryQuery{Inventory: InventoryHosts, ViewID: "v", Field: domain.FieldDisplayName, Value: "db"})
	state = r.Reduce(state, SetInventoryQuery{Inventory: InventorySubscriptions, ViewID: "v", Field: domain.FieldSort, Value: "sku"})

	assert.Equal(t, domain.ViewQueries{"v": {"limit": 10}}, state.InventoryGuestsQuery)
	assert.Equal(t, domain.ViewQueries{"v": {"display_name": "db"}}, state.InventoryHostsQuery)
	assert.Equal(t, domain.ViewQueries{"v": {"sort": "sku"}}, state.InventorySubscriptionsQuery)

	assert.Same(t, state, r.Reduce(state, SetInventoryQuery{Inventory: "virtual", ViewID: "v", Field: "limit", Value: 1}))
}

func TestReduce_SetInventoryQueryFieldsPerInventory(t *testing.T) {
	r := NewReducer(testRegistry())
	state := domain.NewQueryState()

	tests := []struct {
		name      string
		inventory Inventory
		field     domain.FieldKey
		accepted  bool
	}{
		{name: "guests offset", inventory: InventoryGuests, field: domain.FieldOffset, accepted: true},
		{name: "guests sort", inventory: InventoryGuests, field: domain.FieldSort},
		{name: "guests display name", inventory: InventoryGuests, field: domain.FieldDisplayName},
		{name: "hosts display name", inventory: InventoryHosts, field: domain.FieldDisplayName, accepted: true},
		{name: "hosts direction", inventory: InventoryHosts, field: domain.FieldDirection, accepted: true},
		{name: "hosts sla", inventory: InventoryHosts, field: domain.FieldSLA},
		{name: "subscriptions sort", inventory: InventorySubscriptions, field: domain.FieldSort, accepted: true},
		{name: "subscriptions display name", inventory: InventorySubscriptions, field: domain.FieldDisplayName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := r.Reduce(state, SetInventoryQuery{Inventory: tt.inventory, ViewID: "v", Field: tt.field, Value: "x"})
			if tt.accepted {
				assert.NotSame(t, state, next)
				return
			}
			assert.Same(t, state, next)
		})
	}
}

func TestReduce_ResetInventoryList(t *testing.T) {
	reg := new(mockRegistry)
	reg.On("ViewsByID", "hostsA").Return([]string{"hostsA", "hostsMissing"})
	r := NewReducer(reg)

	state := populatedState()
	state.InventorySubscriptionsQuery["hostsA"] = domain.Query{"offset": "5", "direction": "desc", "limit": 5}

	got := r.Reduce(state, ResetInventoryList{ViewID: "hostsA"})

	assert.Equal(t, domain.Query{"offset": 0, "limit": 20}, got.InventoryHostsQuery["hostsA"])
	assert.Equal(t, domain.Query{"offset": "5", "limit": 5}, got.InventorySubscriptionsQuery["hostsA"])
	assert.NotContains(t, got.InventoryHostsQuery, "hostsMissing")
	assert.NotContains(t, got.InventorySubscriptionsQuery, "hostsMissing")

	assert.Equal(t, state.InventoryHostsQuery["viewOpenShift"], got.InventoryHostsQuery["viewOpenShift"])
	assert.Equal(t, state.InventoryGuestsQuery, got.InventoryGuestsQuery)
	reg.AssertExpectations(t)
}

func TestReduce_ListResolutionFallback(t *testing.T) {
	reg := new(mockRegistry)
	reg.On("ViewsByID", mock.Anything).Return(nil)
	r := NewReducer(reg)

	got := r.Reduce(populatedState(), ResetInventoryList{ViewID: "viewOpenShift"})
	assert.Equal(t, domain.Query{"offset": 0}, got.InventoryHostsQuery["viewOpenShift"])
	assert.Equal(t, domain.Query{"offset": 0}, got.InventorySubscriptionsQuery["viewOpenShift"])

	untouched := r.Reduce(populatedState(), ResetInventoryList{ViewID: "nobody"})
	assert.Equal(t, populatedState().InventoryHostsQuery, untouched.InventoryHostsQuery)
	assert.NotContains(t, untouched.InventoryHostsQuery, "nobody")
}

func TestReduce_ClearInventoryList(t *testing.T) {
	r := NewReducer(testRegistry())

	got := r.Reduce(populatedState(), ClearInventoryList{ViewID: "hostsA"})

	assert.Equal(t, domain.Query{"offset": 0, "limit": 20, "direction": "asc", "sort": "last_seen"}, got.InventoryHostsQuery["hostsA"])
	assert.Equal(t, domain.Query{"offset": 10, "limit": 10}, got.InventoryGuestsQuery["hostsA"])
}

func TestReduce_ClearInventoryGuestsList(t *testing.T) {
	r := NewReducer(testRegistry())

	got := r.Reduce(populatedState(), ClearInventoryGuestsList{ViewID: "hostsA"})

	assert.Equal(t, domain.Query{"offset": 0, "limit": 10}, got.InventoryGuestsQuery["hostsA"])
	assert.Equal(t, 40, got.InventoryHostsQuery["hostsA"]["offset"])
}

func TestReduce_ResetProductGroup(t *testing.T) {
	reg := new(mockRegistry)
	reg.On("ViewsByGroup", "RHEL").Return([]string{"hostsA", "hostsB"})
	r := NewReducer(reg)

	state := domain.NewQueryState()
	state.Query["hostsA"] = domain.Query{"sla": "Premium"}
	state.Query["other"] = domain.Query{"sla": "Standard"}
	state.InventoryHostsQuery["hostsA"] = domain.Query{"offset": 10}
	state.InventorySubscriptionsQuery["subs"] = domain.Query{"offset": 3}

	got := r.Reduce(state, ResetProductGroup{ProductGroup: "RHEL"})

	assert.Equal(t, domain.ViewQueries{"other": {"sla": "Standard"}}, got.Query)
	assert.Empty(t, got.InventoryHostsQuery)
	assert.Equal(t, state.InventorySubscriptionsQuery, got.InventorySubscriptionsQuery)
	assert.Empty(t, got.GraphTallyQuery)
	assert.Empty(t, got.InventoryGuestsQuery)
	reg.AssertExpectations(t)
}

func TestReduce_ResetProductGroupFallback(t *testing.T) {
	r := NewReducer(testRegistry())

	state := populatedState()
	state.Query["Satellite"] = domain.Query{"sla": "Premium"}

	got := r.Reduce(state, ResetProductGroup{ProductGroup: "Satellite"})
	assert.NotContains(t, got.Query, "Satellite")
	assert.Equal(t, state.InventoryHostsQuery, got.InventoryHostsQuery)

	unchanged := r.Reduce(populatedState(), ResetProductGroup{ProductGroup: "Nobody"})
	assert.Equal(t, populatedState(), unchanged)
}

func TestReduce_ResetProductGroupLeavesOthersUntouched(t *testing.T) {
	r := NewReducer(testRegistry())
	state := populatedState()

	got := r.Reduce(state, ResetProductGroup{ProductGroup: "RHEL"})

	for name, pair := range map[string][2]domain.ViewQueries{
		"query":         {state.Query, got.Query},
		"graph":         {state.GraphTallyQuery, got.GraphTallyQuery},
		"guests":        {state.InventoryGuestsQuery, got.InventoryGuestsQuery},
		"hosts":         {state.InventoryHostsQuery, got.InventoryHostsQuery},
		"subscriptions": {state.InventorySubscriptionsQuery, got.InventorySubscriptionsQuery},
	} {
		before, after := pair[0], pair[1]
		assert.NotContains(t, after, "hostsA", name)
		assert.NotContains(t, after, "hostsB", name)
		for id, q := range before {
			if id == "hostsA" || id == "hostsB" {
				continue
			}
			assert.Equal(t, q, after[id], name+"/"+id)
		}
	}
	assert.Equal(t, state.Product, got.Product)
}

func TestReduce_Product(t *testing.T) {
	r := NewReducer(testRegistry())
	state := populatedState()

	withConfig := r.Reduce(state, SetProduct{Config: "new-config"})
	assert.Equal(t, "new-config", withConfig.Product.Config)
	assert.Equal(t, map[string]any{"RHEL": "rhel-x86"}, withConfig.Product.Variant)

	withVariant := r.Reduce(withConfig, SetProductVariant{ProductGroup: "OpenShift", Variant: "metrics"})
	assert.Equal(t, map[string]any{"RHEL": "rhel-x86", "OpenShift": "metrics"}, withVariant.Product.Variant)
	assert.Equal(t, "new-config", withVariant.Product.Config)
	assert.Equal(t, state.Query, withVariant.Query)

	fromEmpty := r.Reduce(nil, SetProductVariant{ProductGroup: "RHEL", Variant: "rhel-arm"})
	assert.Equal(t, map[string]any{"RHEL": "rhel-arm"}, fromEmpty.Product.Variant)
}

func TestReduce_UnknownActionReturnsSameState(t *testing.T) {
	r := NewReducer(testRegistry())
	state := populatedState()

	assert.Same(t, state, r.Reduce(state, unknownAction{}))
	assert.Same(t, state, r.Reduce(state, nil))
}

func TestReduce_NeverMutatesInput(t *testing.T) {
	r := NewReducer(testRegistry())

	actions := []Action{
		SetQuery{ViewID: "hostsA", Field: "sla", Value: "Standard"},
		SetQuery{ViewID: "fresh", Field: "sla", Value: "Standard"},
		ClearQuery{ViewID: "hostsA", ClearFilters: domain.Query{"sla": nil}},
		SetGranularity("hostsA", domain.GranularityMonthly),
		SetRHSMQuery{ViewID: "hostsA", Field: domain.FieldUOM, Value: "Cores"},
		SetInventoryQuery{Inventory: InventoryHosts, ViewID: "hostsA", Field: "offset", Value: 60},
		ResetInventoryList{ViewID: "hostsA"},
		ResetInventoryList{ViewID: "viewOpenShift"},
		ClearInventoryList{ViewID: "viewOpenShift"},
		ClearInventoryGuestsList{ViewID: "hostsA"},
		ResetProductGroup{ProductGroup: "RHEL"},
		ResetProductGroup{ProductGroup: "OpenShift"},
		SetProduct{Config: nil},
		SetProductVariant{ProductGroup: "RHEL", Variant: "rhel-arm"},
	}
	actions = append(actions, SetDateRange("hostsA", domain.DateRange{})...)

	kinds := map[Kind]bool{}
	for _, a := range actions {
		kinds[a.Kind()] = true
		t.Run(string(a.Kind()), func(t *testing.T) {
			state := populatedState()
			snapshot := state.Clone()

			next := r.Reduce(state, a)

			require.NotSame(t, state, next)
			assert.Equal(t, snapshot, state)
		})
	}

	for _, k := range Kinds {
		assert.True(t, kinds[k], "no purity case for %s", k)
	}
}

func TestReduce_Deterministic(t *testing.T) {
	r := NewReducer(testRegistry())

	a := r.Reduce(populatedState(), ResetInventoryList{ViewID: "hostsA"})
	b := r.Reduce(populatedState(), ResetInventoryList{ViewID: "hostsA"})

	assert.Equal(t, a, b)
}
