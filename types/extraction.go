package types

// Status values a model is allowed to assign to an extracted project.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusDone       = "done"
	ProjectStatusCancelled  = "cancelled"
)

// Priority values shared by tasks and timeline events.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Timeline event kinds.
const (
	EventKindTask      = "task"
	EventKindMessage   = "message"
	EventKindMilestone = "milestone"
	EventKindMeeting   = "meeting"
	EventKindDeadline  = "deadline"
)

type ExtractedProject struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Budget          float64  `json:"budget"`
	StartDate       string   `json:"startDate"`
	ExpectedEndDate string   `json:"expectedEndDate"`
	Technologies    []string `json:"technologies"`
	Status          string   `json:"status"`
}

type ExtractedTask struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	DueDate        string   `json:"dueDate"`
	Tags           []string `json:"tags"`
	SuggestedOwner string   `json:"suggestedOwner"`
}

type ExtractedEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Timestamp   string `json:"timestamp"`
	Priority    string `json:"priority"`
}

type Insights struct {
	Summary           string   `json:"summary"`
	KeyPoints         []string `json:"keyPoints"`
	Recommendations   []string `json:"recommendations"`
	EstimatedDuration string   `json:"estimatedDuration"`
	RiskFactors       []string `json:"riskFactors"`
}

// ExtractionResult is the schema contract shared by the model-based
// extractor and the heuristic fallback. Both paths must fill every key.
type ExtractionResult struct {
	Projects  []ExtractedProject `json:"projects"`
	Tasks     []ExtractedTask    `json:"tasks"`
	Timeline  []ExtractedEvent   `json:"timeline"`
	Insights  Insights           `json:"insights"`
	AIPowered bool               `json:"ai_powered"`
}

// ExtractionMetadata describes the request the result was produced for.
// TeamID and UserID are caller attribution, passed through unvalidated.
type ExtractionMetadata struct {
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	MimeType    string `json:"mimeType"`
	TextLength  int    `json:"textLength"`
	ProcessedAt string `json:"processedAt"`
	TeamID      string `json:"teamId"`
	UserID      string `json:"userId"`
}

// DocumentAnalysis is the envelope payload returned by the extraction
// endpoint: the schema-valid result plus request metadata.
type DocumentAnalysis struct {
	ExtractionResult
	Metadata ExtractionMetadata `json:"metadata"`
}
