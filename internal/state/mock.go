// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	uiState *UIState
	saved   []UIState
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetUIState() (*UIState, error) {
	return m.uiState, nil
}

func (m *Mock) SaveUIState(state UIState) {
	m.uiState = &state
	m.saved = append(m.saved, state)
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saved returns every state passed to SaveUIState, in order.
func (m *Mock) Saved() []UIState {
	return m.saved
}

// SetUIState seeds the state returned by GetUIState.
func (m *Mock) SetUIState(state *UIState) {
	m.uiState = state
}
