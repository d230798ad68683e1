package model

import (
	"time"

	"github.com/google/uuid"
)

// ShapePreset is a named, reusable shape configuration.
type ShapePreset struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
	Shape       ShapeConfig `json:"shape"`
}

// NewShapePreset creates a preset with a fresh ID.
func NewShapePreset(name, description string, shape ShapeConfig) ShapePreset {
	return ShapePreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Shape:       shape,
	}
}

// PresetStore holds a collection of shape presets.
type PresetStore struct {
	Presets []ShapePreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []ShapePreset{},
	}
}

// BuiltinPresets returns the presets every installation starts with.
func BuiltinPresets() PresetStore {
	store := NewPresetStore()
	store.Add(NewShapePreset("Classic", "Library defaults", DefaultShapeConfig()))
	store.Add(NewShapePreset("Example", "Command-line example run", ExampleShapeConfig()))
	return store
}

// Add adds a preset to the store, replacing any preset with the same name.
func (ps *PresetStore) Add(p ShapePreset) {
	for i := range ps.Presets {
		if ps.Presets[i].Name == p.Name {
			ps.Presets[i] = p
			return
		}
	}
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID or name. Returns true if found and removed.
func (ps *PresetStore) Remove(key string) bool {
	for i, p := range ps.Presets {
		if p.ID == key || p.Name == key {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns a pointer to the preset with the given ID or name, or nil.
func (ps *PresetStore) Find(key string) *ShapePreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == key || ps.Presets[i].Name == key {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns the preset names for UI dropdowns.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
