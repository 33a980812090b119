package service

import (
	"context"
	"errors"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

type fakeMazeRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]dmn.MazeRecord
	saves   int
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: make(map[uuid.UUID]dmn.MazeRecord)}
}

func (r *fakeMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = *record
	r.saves++
	return nil
}

func (r *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return &record, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]byte
	ttls    map[uuid.UUID]time.Duration
	locks   int
	getErr  error
	lockErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[uuid.UUID][]byte),
		ttls:    make(map[uuid.UUID]time.Duration),
	}
}

func (c *fakeCache) Get(_ context.Context, id uuid.UUID) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	data, ok := c.entries[id]
	return data, ok, nil
}

func (c *fakeCache) Put(_ context.Context, id uuid.UUID, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = data
	c.ttls[id] = ttl
	return nil
}

func (c *fakeCache) Lock(_ context.Context, _ uuid.UUID) (func(context.Context) error, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func(context.Context) error { return nil }, nil
}

func (c *fakeCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uuid.UUID][]byte)
}

type fakeAccountRepo struct {
	byName map[string]dmn.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byName: make(map[string]dmn.Account)}
}

func (r *fakeAccountRepo) Save(_ context.Context, a *dmn.Account) error {
	if existing, ok := r.byName[a.Username]; ok && existing.ID != a.ID {
		return dmn.ErrUsernameTaken
	}
	r.byName[a.Username] = *a
	return nil
}

func (r *fakeAccountRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Account, error) {
	for _, a := range r.byName {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, dmn.ErrAccountNotFound
}

func (r *fakeAccountRepo) ByUsername(_ context.Context, username string) (*dmn.Account, error) {
	a, ok := r.byName[username]
	if !ok {
		return nil, dmn.ErrAccountNotFound
	}
	return &a, nil
}

type fakeTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	t.claims, t.ttl = claims, ttl
	return "signed-token", nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not used")
}

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Debug(string) {}
func (l *recordingLogger) Info(string)  {}
func (l *recordingLogger) Error(string) {}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}
