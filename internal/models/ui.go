package models

// UIState is the persisted UI state. It replaces scattered ad hoc reads of
// individual keys: the store owns one explicit record with defined defaults.
type UIState struct {
	ActiveTab   string `json:"active_tab"`
	PlannerMode string `json:"planner_mode"`
}

// DefaultUIState returns the state used before anything was persisted.
func DefaultUIState() UIState {
	return UIState{
		ActiveTab:   "overview",
		PlannerMode: "daily",
	}
}
