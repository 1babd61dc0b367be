package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	At(ctx context.Context, in PositionInput) (WordResult, error)
	Before(ctx context.Context, in PositionInput) (FragmentResult, error)
	After(ctx context.Context, in PositionInput) (FragmentResult, error)
	Edges(ctx context.Context, in TextInput) (EdgesResult, error)
	Cursor(ctx context.Context, in CursorInput) (CursorResult, error)
	Replace(ctx context.Context, in ReplaceInput) (ReplaceResult, error)
	Presets(ctx context.Context) ([]PresetInfo, error)
}

// PresetPort reports the active and available presets, used by meta
type PresetPort interface {
	Active() string
	Names() []string
}
