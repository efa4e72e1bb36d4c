package preview

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pdf-upload-form/models"
)

// ErrUnknownHandle is returned when releasing a handle that is not live
var ErrUnknownHandle = errors.New("unknown or already released preview handle")

// Handle is a revocable reference to a rendered preview of one file
type Handle struct {
	ID      string
	Name    string
	Summary Summary
}

// RenderFunc produces the preview summary for a file. It must not panic.
type RenderFunc func(file models.SelectedFile) Summary

// Store owns every live preview handle. Each handle is released at most once.
type Store struct {
	handles  map[string]*Handle
	order    map[string]uint64
	mutex    sync.RWMutex
	render   RenderFunc
	seq      uint64
	created  int
	released int
	log      *logrus.Logger
}

func NewStore(render RenderFunc, log *logrus.Logger) *Store {
	if render == nil {
		render = Render
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{
		handles: make(map[string]*Handle),
		order:   make(map[string]uint64),
		render:  render,
		log:     log,
	}
}

// Create renders file once and registers a new live handle for it
func (s *Store) Create(file models.SelectedFile) *Handle {
	summary := s.render(file)

	h := &Handle{
		ID:      uuid.NewString(),
		Name:    file.Name,
		Summary: summary,
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.seq++
	s.handles[h.ID] = h
	s.order[h.ID] = s.seq
	s.created++

	s.log.WithFields(logrus.Fields{"handle": h.ID, "file": file.Name}).Debug("preview handle created")
	return h
}

func (s *Store) Get(id string) (*Handle, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	h, exists := s.handles[id]
	return h, exists
}

// Release drops a live handle
func (s *Store) Release(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.handles[id]; !exists {
		return ErrUnknownHandle
	}
	delete(s.handles, id)
	delete(s.order, id)
	s.released++

	s.log.WithField("handle", id).Debug("preview handle released")
	return nil
}

// ReleaseAll drops every live handle and returns how many were released
func (s *Store) ReleaseAll() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	n := len(s.handles)
	s.handles = make(map[string]*Handle)
	s.order = make(map[string]uint64)
	s.released += n

	if n > 0 {
		s.log.WithField("count", n).Debug("preview handles released")
	}
	return n
}

// Live is the number of handles created and not yet released
func (s *Store) Live() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.handles)
}

// IDs lists live handle IDs in creation order
func (s *Store) IDs() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]string, 0, len(s.handles))
	for id := range s.handles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return s.order[ids[i]] < s.order[ids[j]] })
	return ids
}

type Stats struct {
	Created  int
	Released int
	Live     int
}

func (s *Store) GetStats() Stats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return Stats{
		Created:  s.created,
		Released: s.released,
		Live:     len(s.handles),
	}
}
