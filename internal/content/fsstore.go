package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// docExtensions are the document file extensions probed, in preference order.
var docExtensions = []string{".json", ".yaml", ".yml"}

// FSStore reads entity documents from a directory tree following the
// convention rooms/<roomID>/room.json, rooms/<roomID>/items/<itemID>.json,
// rooms/<roomID>/furniture/<furnitureID>.json. YAML documents are accepted
// alongside JSON.
//
// Fetched documents are cached; the store never observes file changes made
// after the first read of a document.
type FSStore struct {
	root string

	mu        sync.RWMutex
	rooms     map[string]*Room
	items     map[string]*Item
	furniture map[string]*Furniture
}

// NewFSStore creates an FSStore rooted at the given content directory.
//
// Precondition: root must be an existing directory.
// Postcondition: Returns a ready store, or an error if root is not a directory.
func NewFSStore(root string) (*FSStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", root)
	}
	return &FSStore{
		root:      root,
		rooms:     make(map[string]*Room),
		items:     make(map[string]*Item),
		furniture: make(map[string]*Furniture),
	}, nil
}

// Room fetches and validates the room document for the given room ID.
//
// Postcondition: Returns a validated Room, ErrNotFound if no document exists,
// or a wrapped parse/validation error.
func (s *FSStore) Room(ctx context.Context, roomID string) (*Room, error) {
	s.mu.RLock()
	cached, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var room Room
	if err := s.readDoc(ctx, filepath.Join("rooms", roomID, "room"), &room); err != nil {
		return nil, err
	}
	if err := room.Validate(); err != nil {
		return nil, fmt.Errorf("validating room %q: %w", roomID, err)
	}

	s.mu.Lock()
	s.rooms[roomID] = &room
	s.mu.Unlock()
	return &room, nil
}

// Item fetches an item document scoped to the given room.
func (s *FSStore) Item(ctx context.Context, roomID, itemID string) (*Item, error) {
	key := roomID + "/" + itemID
	s.mu.RLock()
	cached, ok := s.items[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var item Item
	if err := s.readDoc(ctx, filepath.Join("rooms", roomID, "items", itemID), &item); err != nil {
		return nil, err
	}
	if item.Name == "" {
		return nil, fmt.Errorf("item %q in room %q: name must not be empty", itemID, roomID)
	}

	s.mu.Lock()
	s.items[key] = &item
	s.mu.Unlock()
	return &item, nil
}

// Furniture fetches a furniture document scoped to the given room.
func (s *FSStore) Furniture(ctx context.Context, roomID, furnitureID string) (*Furniture, error) {
	key := roomID + "/" + furnitureID
	s.mu.RLock()
	cached, ok := s.furniture[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var furn Furniture
	if err := s.readDoc(ctx, filepath.Join("rooms", roomID, "furniture", furnitureID), &furn); err != nil {
		return nil, err
	}
	if furn.Name == "" {
		return nil, fmt.Errorf("furniture %q in room %q: name must not be empty", furnitureID, roomID)
	}

	s.mu.Lock()
	s.furniture[key] = &furn
	s.mu.Unlock()
	return &furn, nil
}

// readDoc loads the document at base (sans extension) into out, probing the
// supported extensions in order. Missing documents map to ErrNotFound.
func (s *FSStore) readDoc(ctx context.Context, base string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, ext := range docExtensions {
		path := filepath.Join(s.root, base+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("reading document %s: %w", path, err)
		}

		if ext == ".json" {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("parsing document %s: %w", path, err)
			}
			return nil
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parsing document %s: %w", path, err)
		}
		return nil
	}

	return fmt.Errorf("document %s: %w", strings.ReplaceAll(base, string(filepath.Separator), "/"), ErrNotFound)
}
