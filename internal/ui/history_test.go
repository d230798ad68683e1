package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandramohan-1/mobius-strip/internal/model"
)

func shapeWithRadius(r float64) model.ShapeConfig {
	s := model.DefaultShapeConfig()
	s.Radius = r
	return s
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, defaultMaxDepth, h.maxDepth)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(shapeWithRadius(1), model.QuadratureSimpson, "initial"))
	require.True(t, h.CanUndo())

	current := MakeSnapshot(shapeWithRadius(2), model.QuadratureSimpson, "current")
	restored, ok := h.Undo(current)
	require.True(t, ok)
	assert.Equal(t, 1.0, restored.Shape.Radius)
	assert.Equal(t, "initial", restored.Label)
	assert.True(t, h.CanRedo())
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(shapeWithRadius(1), model.QuadratureSimpson, "r=1"))
	h.Push(MakeSnapshot(shapeWithRadius(2), model.QuadratureTrapezoid, "r=2"))
	current := MakeSnapshot(shapeWithRadius(3), model.QuadratureSimpson, "r=3")

	restored, ok := h.Undo(current)
	require.True(t, ok)
	assert.Equal(t, 2.0, restored.Shape.Radius)
	assert.Equal(t, model.QuadratureTrapezoid, restored.Quadrature)

	restored, ok = h.Undo(restored)
	require.True(t, ok)
	assert.Equal(t, 1.0, restored.Shape.Radius)
	assert.False(t, h.CanUndo())

	redone, ok := h.Redo(restored)
	require.True(t, ok)
	assert.Equal(t, 2.0, redone.Shape.Radius)

	redone, ok = h.Redo(redone)
	require.True(t, ok)
	assert.Equal(t, 3.0, redone.Shape.Radius)
	assert.False(t, h.CanRedo())
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(shapeWithRadius(1), model.QuadratureSimpson, "a"))

	_, ok := h.Undo(MakeSnapshot(shapeWithRadius(2), model.QuadratureSimpson, "b"))
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Push(MakeSnapshot(shapeWithRadius(5), model.QuadratureSimpson, "c"))
	assert.False(t, h.CanRedo(), "a new edit must discard the redo stack")
}

func TestUndoRedoEmpty(t *testing.T) {
	h := NewHistory()
	_, ok := h.Undo(Snapshot{})
	assert.False(t, ok)
	_, ok = h.Redo(Snapshot{})
	assert.False(t, ok)
}

func TestMaxDepth(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakeSnapshot(shapeWithRadius(float64(i+1)), model.QuadratureSimpson, "step"))
	}
	assert.Len(t, h.undoStack, defaultMaxDepth)
	// The oldest ten snapshots were dropped.
	assert.Equal(t, 11.0, h.undoStack[0].Shape.Radius)
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(shapeWithRadius(1), model.QuadratureSimpson, "a"))
	_, _ = h.Undo(MakeSnapshot(shapeWithRadius(2), model.QuadratureSimpson, "b"))
	h.Push(MakeSnapshot(shapeWithRadius(3), model.QuadratureSimpson, "c"))

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
