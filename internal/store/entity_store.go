// Package store owns the location, vehicle and order collections and their
// persisted representation in a flat key-value store.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/platform/metrics"
	"carexpress-dispatch/internal/ports"
)

// Storage keys of the persisted collections.
const (
	KeyLocations   = "carexpress-locations"
	KeyVehicles    = "carexpress-vehicles"
	KeyOrders      = "carexpress-orders"
	KeyNextOrderID = "carexpress-next-order-id"
)

// EntityStore is the in-memory entity snapshot backed by a KeyValueStore.
// Every write is persisted before it becomes visible; a failed write leaves
// the snapshot unchanged.
type EntityStore struct {
	kv  ports.KeyValueStore
	now func() time.Time

	mu          sync.RWMutex
	locations   []domain.Location
	vehicles    []domain.Vehicle
	orders      []domain.Order
	nextOrderID int

	obsMu        sync.Mutex
	observers    map[int]func(domain.Change)
	nextObserver int
}

func New(kv ports.KeyValueStore) *EntityStore {
	return &EntityStore{
		kv:          kv,
		now:         time.Now,
		locations:   []domain.Location{},
		vehicles:    []domain.Vehicle{},
		orders:      []domain.Order{},
		nextOrderID: 1,
		observers:   map[int]func(domain.Change){},
	}
}

// SetClock replaces the time source used for change events and backups.
func (s *EntityStore) SetClock(now func() time.Time) { s.now = now }

// Load replaces the snapshot with the persisted collections.
// Absent keys load as empty collections.
func (s *EntityStore) Load(ctx context.Context) error {
	var (
		locations []domain.Location
		vehicles  []domain.Vehicle
		orders    []domain.Order
		nextID    int
	)

	if err := s.read(ctx, KeyLocations, &locations); err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if err := s.read(ctx, KeyVehicles, &vehicles); err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if err := s.read(ctx, KeyOrders, &orders); err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if err := s.read(ctx, KeyNextOrderID, &nextID); err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations = nonNil(locations)
	s.vehicles = nonNil(vehicles)
	s.orders = nonNil(orders)
	s.nextOrderID = max(nextID, nextIDAfter(s.orders), 1)

	return nil
}

// Save writes every collection and the order id counter.
func (s *EntityStore) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	err := s.persist(ctx, "all", map[string]any{
		KeyLocations:   s.locations,
		KeyVehicles:    s.vehicles,
		KeyOrders:      s.orders,
		KeyNextOrderID: s.nextOrderID,
	})
	if err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

func (s *EntityStore) ListLocations() []domain.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.locations)
}

func (s *EntityStore) ListVehicles() []domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.vehicles)
}

func (s *EntityStore) ListOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

func (s *EntityStore) GetLocation(name string) (domain.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FindLocation(s.locations, name)
}

func (s *EntityStore) GetVehicle(plate string) (domain.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.vehicleIndex(plate); i >= 0 {
		return s.vehicles[i], true
	}
	return domain.Vehicle{}, false
}

func (s *EntityStore) GetOrder(id int) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.orderIndex(id); i >= 0 {
		return s.orders[i], true
	}
	return domain.Order{}, false
}

// NextOrderID is the id the next created order will receive.
func (s *EntityStore) NextOrderID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextOrderID
}

func (s *EntityStore) Summary() domain.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	available := 0
	for _, v := range s.vehicles {
		if v.IsAvailable() {
			available++
		}
	}
	return domain.Summary{
		Locations:         len(s.locations),
		Vehicles:          len(s.vehicles),
		Orders:            len(s.orders),
		AvailableVehicles: available,
	}
}

// Subscribe registers fn to be called after every successful write.
// The returned func removes the registration.
func (s *EntityStore) Subscribe(fn func(domain.Change)) (cancel func()) {
	s.obsMu.Lock()
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

// Emit notifies observers of a change made on behalf of the store.
func (s *EntityStore) Emit(kind domain.ChangeKind, key string) {
	change := domain.Change{Kind: kind, Key: key, At: s.now().UTC()}

	s.obsMu.Lock()
	fns := make([]func(domain.Change), 0, len(s.observers))
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}

func (s *EntityStore) read(ctx context.Context, key string, dst any) error {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %q: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

// persist encodes and writes entries, atomically when the backend supports it.
// Callers hold s.mu.
func (s *EntityStore) persist(ctx context.Context, collection string, entries map[string]any) (err error) {
	defer func() { metrics.StoreWrites.WithLabelValues(collection, metrics.Result(err)).Inc() }()

	encoded := make(map[string][]byte, len(entries))
	for key, v := range entries {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %q: %w", key, err)
		}
		encoded[key] = b
	}

	if batch, ok := s.kv.(ports.BatchKeyValueStore); ok {
		if err := batch.SetMany(ctx, encoded); err != nil {
			return fmt.Errorf("persist %s: %w", collection, err)
		}
		return nil
	}

	keys := make([]string, 0, len(encoded))
	for key := range encoded {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := s.kv.Set(ctx, key, encoded[key]); err != nil {
			return fmt.Errorf("persist %s: %w", collection, err)
		}
	}
	return nil
}

func (s *EntityStore) locationIndex(name string) int {
	return slices.IndexFunc(s.locations, func(l domain.Location) bool { return l.Name == name })
}

func (s *EntityStore) vehicleIndex(plate string) int {
	return slices.IndexFunc(s.vehicles, func(v domain.Vehicle) bool { return v.Plate == plate })
}

func (s *EntityStore) orderIndex(id int) int {
	return slices.IndexFunc(s.orders, func(o domain.Order) bool { return o.ID == id })
}

func (s *EntityStore) hasLocation(name string) bool { return s.locationIndex(name) >= 0 }

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

// Copy of in with i removed.
func without[T any](in []T, i int) []T {
	out := make([]T, 0, len(in)-1)
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...)
}

// Copy of in with element i replaced by v.
func replaced[T any](in []T, i int, v T) []T {
	out := slices.Clone(in)
	out[i] = v
	return out
}

// Copy of in with v appended.
func appended[T any](in []T, v T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, in...)
	return append(out, v)
}

func nextIDAfter(orders []domain.Order) int {
	next := 1
	for _, o := range orders {
		if o.ID >= next {
			next = o.ID + 1
		}
	}
	return next
}

// mutate runs fn under the write lock and notifies observers once the lock
// is released. fn returns the key of the changed entity, or "" when nothing
// was written.
func (s *EntityStore) mutate(kind domain.ChangeKind, fn func() (string, error)) error {
	s.mu.Lock()
	key, err := fn()
	s.mu.Unlock()

	if err != nil || key == "" {
		return err
	}
	s.Emit(kind, key)
	return nil
}
