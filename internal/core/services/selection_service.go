package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	portssvc "github.com/fxlens/fxlens_backend/internal/core/ports/services"
	"github.com/fxlens/fxlens_backend/internal/metrics"
)

// SelectionService holds the active display currency for the process. It is
// a single owned instance wired through the service container; consumers
// subscribe for change notifications, which are delivered synchronously
// before Set returns.
type SelectionService struct {
	catalog     portssvc.CatalogReaderSvc
	defaultCode string

	mu        sync.Mutex
	code      string
	listeners map[int]func(code string)
	nextID    int
}

func NewSelectionService(catalog portssvc.CatalogReaderSvc, defaultCode string) *SelectionService {
	if defaultCode == "" {
		defaultCode = domain.DefaultCurrencyCode
	}
	return &SelectionService{
		catalog:     catalog,
		defaultCode: strings.ToUpper(defaultCode),
		listeners:   make(map[int]func(code string)),
	}
}

// Get returns the active display currency code. It never fails: when
// nothing has been selected, or the stored code is absent from the current
// catalog snapshot, the default code is returned instead.
func (s *SelectionService) Get() string {
	s.mu.Lock()
	code := s.code
	s.mu.Unlock()

	if code == "" {
		return s.defaultCode
	}
	cat, err := s.catalog.Current()
	if err != nil || !cat.Has(code) {
		return s.defaultCode
	}
	return code
}

// Set updates the active display currency. Codes absent from the current
// snapshot are rejected with ErrUnknownCurrency and the previous selection
// stays active; the rejection is never a silent no-op. Listeners run
// synchronously before Set returns, so a Format call issued after a
// completed Set always observes the new selection.
func (s *SelectionService) Set(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, code)
	}

	cat, err := s.catalog.Current()
	if err != nil {
		return fmt.Errorf("cannot select currency %q: %w", code, err)
	}
	if !cat.Has(code) {
		return fmt.Errorf("%w: %q is not in the catalog", apperrors.ErrUnknownCurrency, code)
	}

	s.mu.Lock()
	s.code = code
	listeners := make([]func(string), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(code)
	}
	metrics.SelectionChangesTotal.Inc()
	return nil
}

// Subscribe registers a listener called once per successful Set. Late
// subscribers get no replay beyond reading Get at subscribe time. The
// returned handle removes the listener and is safe to call more than once.
func (s *SelectionService) Subscribe(listener func(code string)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
