package blob

import (
	"bytes"
	"context"
	"io"
	"sync"
)

type memObject struct {
	data        []byte
	contentType string
}

// Memory keeps objects in process memory. Used in tests and for throwaway
// deployments.
type Memory struct {
	mu   sync.RWMutex
	objs map[string]memObject
}

func NewMemory() *Memory { return &Memory{objs: make(map[string]memObject)} }

func (s *Memory) Driver() string { return "memory" }

func (s *Memory) Put(_ context.Context, key string, r io.Reader, contentType string) error {
	clean, err := CleanKey(key)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objs[clean] = memObject{data: data, contentType: contentType}
	return nil
}

func (s *Memory) Get(_ context.Context, key string) (io.ReadCloser, Info, error) {
	clean, err := CleanKey(key)
	if err != nil {
		return nil, Info{}, err
	}

	s.mu.RLock()
	obj, ok := s.objs[clean]
	s.mu.RUnlock()
	if !ok {
		return nil, Info{}, notFound(key)
	}
	info := Info{Key: clean, ContentType: obj.contentType, Size: int64(len(obj.data))}
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	clean, err := CleanKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objs[clean]; !ok {
		return notFound(key)
	}
	delete(s.objs, clean)
	return nil
}

// Len returns the number of stored objects.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objs)
}
