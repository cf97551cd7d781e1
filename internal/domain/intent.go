package domain

// IntentType classifies what the user wants to do at the prompt.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListPlans
	IntentSelectPlan
	IntentStartRun
	IntentQuery   // describe the current step
	IntentApply   // apply the current step
	IntentReset   // start the next round once every step is applied
	IntentShow    // display every recipe in the run
	IntentStock   // print the run's stockpile
	IntentAdd     // append a recipe from the book
	IntentReplace // swap the recipe at a step
	IntentRemove  // drop the last step
	IntentFork    // deep copy the run into a new one
	IntentStatus
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListPlans:
		return "list_plans"
	case IntentSelectPlan:
		return "select_plan"
	case IntentStartRun:
		return "start_run"
	case IntentQuery:
		return "query"
	case IntentApply:
		return "apply"
	case IntentReset:
		return "reset"
	case IntentShow:
		return "show"
	case IntentStock:
		return "stock"
	case IntentAdd:
		return "add"
	case IntentReplace:
		return "replace"
	case IntentRemove:
		return "remove"
	case IntentFork:
		return "fork"
	case IntentStatus:
		return "status"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. plan number or "2 forge-blade"
}
