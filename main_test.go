package main

import (
	"testing"

	"todo-app/pkg/config"
	"todo-app/pkg/store"
)

func TestNewStoreDefaultsToFileStore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Store.DataDir = t.TempDir()

	s, err := newStore(cfg)
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}
	if _, ok := s.(*store.FileStore); !ok {
		t.Errorf("newStore returned %T, want *store.FileStore", s)
	}
}
