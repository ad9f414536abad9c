package constants

// SessionState represents the current state of the TUI application
type SessionState int

// FlowState represents the profile/plan workflow state
type FlowState string

// DataState classifies the reconciled goals + AI plan data on the overview
type DataState string

// Sender identifies who authored a chat message
type Sender string

const (
	AppName           = "lifelens"
	DefaultConfigPath = "~/.config/lifelens/lifelens.json"
	Version           = "v0.2.0"

	// Keyring keys for the stored session
	KeyringUserID      = "user-id"
	KeyringAccessToken = "access-token"
	KeyringEmail       = "email"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Flow states for the profile save / plan generation workflow
	FlowForm       FlowState = "form"
	FlowSaving     FlowState = "saving"
	FlowSaved      FlowState = "saved"
	FlowGenerating FlowState = "generating"
	FlowGenerated  FlowState = "generated"

	// Data states for the goals overview reconciliation
	DataReady       DataState = "ready"        // goals and generated plan both present
	DataPlanPending DataState = "plan_pending" // goals exist, plan not generated yet
	DataIncomplete  DataState = "incomplete"   // neither goals nor plan, cleanup candidate

	// Chat senders
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"

	// Habit frequencies
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"

	// Session States
	StateOverview SessionState = iota
	StateProfile
	StateHabits
	StateMood
	StateChat
	StateConfirmDelete
	StateConfirmCleanup
	StateAddHabit
	StateLogMood
)
