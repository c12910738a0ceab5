package types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	TeamID   string `json:"team_id"`
}

// IntegrateRequest carries a previously returned extraction result back
// to the server for materialization, plus the attribution identifiers.
type IntegrateRequest struct {
	ExtractionResult
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
}

type CreateProjectRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Budget          float64  `json:"budget"`
	StartDate       string   `json:"start_date"`
	ExpectedEndDate string   `json:"expected_end_date"`
	Technologies    []string `json:"technologies"`
	Status          string   `json:"status"`
	TeamID          string   `json:"team_id"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date"`
	Tags        []string `json:"tags"`
	Assignee    string   `json:"assignee"`
	ProjectID   string   `json:"project_id"`
	TeamID      string   `json:"team_id"`
}

type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Timestamp   string `json:"timestamp"`
	Priority    string `json:"priority"`
	TeamID      string `json:"team_id"`
}
