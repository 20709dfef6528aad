package notification

// Kind selects the template of an event.
type Kind int

const (
	Unknown Kind = iota
	Assignment
	Removal
	Completion
	Update
)

// Template names registered with the WhatsApp Business account.
const (
	TemplateWorkerAssignment = "worker_assignment"
	TemplateWorkerChanged    = "worker_changed"
	TemplateOrderCompleted   = "order_completed"
	TemplateUpdateSending    = "update_sending"
)

// DefaultLanguage is the template language code.
const DefaultLanguage = "en"

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:    "unknown",
		Assignment: "assignment",
		Removal:    "removal",
		Completion: "completion",
		Update:     "update",
	}
}

func getKindTemplates() map[Kind]string {
	//nolint:exhaustive // Unknown has no template
	return map[Kind]string{
		Assignment: TemplateWorkerAssignment,
		Removal:    TemplateWorkerChanged,
		Completion: TemplateOrderCompleted,
		Update:     TemplateUpdateSending,
	}
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// TemplateName returns the WhatsApp template for the kind, or "" for Unknown.
func (k Kind) TemplateName() string {
	return getKindTemplates()[k]
}
