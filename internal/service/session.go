package service

import (
	"sync"

	"github.com/cargoview/opsdash/internal/domain"
)

// DefaultPageSize matches the dashboard's initial pagination model
const DefaultPageSize = 10

// SessionStore owns one operator session's working set and view state:
// the baseline collection handed in by the authenticated session, an
// optional provider-filtered collection that replaces it while insight
// filters are active, the filter state, pagination and the expanded row.
//
// It replaces the old free-standing "original vs filtered" singleton with
// an explicitly owned, explicitly reset store. Provider responses are
// committed through a generation counter: a response whose generation has
// been superseded is discarded instead of racing the latest request.
type SessionStore struct {
	mu sync.Mutex

	baseline         []domain.TrackedShipment
	providerFiltered []domain.TrackedShipment
	providerActive   bool
	generation       uint64

	filter     FilterState
	page       int
	pageSize   int
	expandedID string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{pageSize: DefaultPageSize}
}

// SetBaseline installs a freshly fetched collection and resets the
// provider-filtered mode, pagination and expansion.
func (s *SessionStore) SetBaseline(shipments []domain.TrackedShipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseline = shipments
	s.providerFiltered = nil
	s.providerActive = false
	s.generation++
	s.page = 0
	s.expandedID = ""
}

// WorkingSet returns the collection the engine should currently present:
// the provider-filtered set while insight filters are active, otherwise
// the baseline.
func (s *SessionStore) WorkingSet() []domain.TrackedShipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.providerActive {
		return s.providerFiltered
	}
	return s.baseline
}

// NextGeneration marks the start of a provider filter request and returns
// the generation the eventual response must present to be committed.
func (s *SessionStore) NextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// ApplyProviderResult commits a provider-filtered collection if gen is
// still current. Returns false when the response was superseded by a later
// request or a reset; the working set is left unchanged in that case.
func (s *SessionStore) ApplyProviderResult(gen uint64, shipments []domain.TrackedShipment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.providerFiltered = shipments
	s.providerActive = true
	s.page = 0
	s.expandedID = ""
	return true
}

// ResetProviderFilter reverts to the baseline collection and invalidates
// any provider request still in flight.
func (s *SessionStore) ResetProviderFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providerFiltered = nil
	s.providerActive = false
	s.generation++
	s.filter.Insights = nil
	s.filter.PendingInsights = nil
	s.page = 0
	s.expandedID = ""
}

// Filter returns a copy of the current filter state
func (s *SessionStore) Filter() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Clone()
}

// SetCompanies commits the company selection immediately
func (s *SessionStore) SetCompanies(codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Companies = append([]string(nil), codes...)
}

// SetSearch commits the free-text query immediately
func (s *SessionStore) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Search = query
}

// SetStatuses commits the status-tag selection immediately. Status tags
// do not wait for an apply; that asymmetry with insight tags is the
// observed product behavior, kept on purpose.
func (s *SessionStore) SetStatuses(tags []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Statuses = append([]string(nil), tags...)
}

// ToggleStatus flips one status tag, committing immediately
func (s *SessionStore) ToggleStatus(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Statuses = toggle(s.filter.Statuses, tag)
}

// TogglePendingInsight flips one insight title in the pending set. Nothing
// changes in the working set until ApplyPendingInsights.
func (s *SessionStore) TogglePendingInsight(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.PendingInsights = toggle(s.filter.PendingInsights, title)
}

// SetPendingInsights replaces the pending insight selection wholesale
func (s *SessionStore) SetPendingInsights(titles []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.PendingInsights = append([]string(nil), titles...)
}

// ApplyPendingInsights commits the pending insight selection and returns
// it. The caller is expected to follow up with the provider filter request
// (or a reset when the selection is empty).
func (s *SessionStore) ApplyPendingInsights() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Insights = append([]string(nil), s.filter.PendingInsights...)
	return append([]string(nil), s.filter.Insights...)
}

// ClearFilters resets every filter dimension and the search text
func (s *SessionStore) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = FilterState{}
}

// Page returns the current zero-based page and page size
func (s *SessionStore) Page() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page, s.pageSize
}

// SetPage moves to a page. Changing page clears the expanded row: a stale
// expansion would otherwise ask for detail rows of a shipment the operator
// can no longer see.
func (s *SessionStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 0 {
		page = 0
	}
	if page != s.page {
		s.page = page
		s.expandedID = ""
	}
}

// SetPageSize changes the page size, resetting to the first page
func (s *SessionStore) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size < 1 {
		size = DefaultPageSize
	}
	if size != s.pageSize {
		s.pageSize = size
		s.page = 0
		s.expandedID = ""
	}
}

// ToggleExpanded expands a row, or collapses it when it is already the
// expanded one. At most one row is expanded at a time.
func (s *SessionStore) ToggleExpanded(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expandedID == id {
		s.expandedID = ""
	} else {
		s.expandedID = id
	}
}

// SetExpanded sets the expanded row outright; empty collapses
func (s *SessionStore) SetExpanded(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expandedID = id
}

// Expanded returns the currently expanded row id, "" when none
func (s *SessionStore) Expanded() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expandedID
}

// ReconcileExpansion clears the expanded id when the row is no longer on
// the visible page, e.g. after a filter change shifted the pagination.
// Returns the id still in effect afterwards.
func (s *SessionStore) ReconcileExpansion(visible []domain.ShipmentRow) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expandedID == "" {
		return ""
	}
	for _, row := range visible {
		if row.ID == s.expandedID {
			return s.expandedID
		}
	}
	s.expandedID = ""
	return ""
}

// InsightFilterActive reports whether the working set is currently the
// provider-filtered collection.
func (s *SessionStore) InsightFilterActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.providerActive
}

// SessionManager hands out one SessionStore per authenticated operator,
// keyed by company id. Stores live for the process lifetime.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*SessionStore
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*SessionStore)}
}

// For returns the store for a key, creating it on first use
func (m *SessionManager) For(key string) *SessionStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	store, ok := m.sessions[key]
	if !ok {
		store = NewSessionStore()
		m.sessions[key] = store
	}
	return store
}
