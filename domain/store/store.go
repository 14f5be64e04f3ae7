package store

import "sync"

// DownloadStore remembers which file every saved url was written to.
type DownloadStore struct {
	saved   map[string]string
	order   []string
	rwMutex sync.RWMutex
}

func NewDownloadStore() *DownloadStore {
	return &DownloadStore{
		saved:   make(map[string]string),
		rwMutex: sync.RWMutex{},
	}
}

func (s *DownloadStore) Add(url, path string) error {
	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()
	if _, ok := s.saved[url]; !ok {
		s.order = append(s.order, url)
	}
	s.saved[url] = path
	return nil
}

func (s *DownloadStore) Saved(url string) (string, bool) {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	path, ok := s.saved[url]
	return path, ok
}

// URLs lists saved urls in the order they were first added.
func (s *DownloadStore) URLs() []string {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	return append([]string(nil), s.order...)
}

func (s *DownloadStore) Len() int {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	return len(s.saved)
}
