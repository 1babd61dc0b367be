package module

import "wordbound/internal/services/api/words/domain"

// Ports are the words module's exported ports
type Ports struct {
	Words   domain.ServicePort
	Presets domain.PresetPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
