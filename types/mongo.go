package types

// Persisted entities. IDs are Mongo object ids decoded as hex strings.

type Project struct {
	ID              string   `json:"id" bson:"_id,omitempty"`
	Name            string   `json:"name" bson:"name"`
	Description     string   `json:"description" bson:"description"`
	Budget          float64  `json:"budget" bson:"budget"`
	StartDate       string   `json:"start_date" bson:"start_date"`
	ExpectedEndDate string   `json:"expected_end_date" bson:"expected_end_date"`
	Technologies    []string `json:"technologies" bson:"technologies"`
	Status          string   `json:"status" bson:"status"`
	TeamID          string   `json:"team_id" bson:"team_id"`
	CreatedBy       string   `json:"created_by" bson:"created_by"`
	CreatedAt       int64    `json:"created_at" bson:"created_at"`
	UpdatedAt       int64    `json:"updated_at" bson:"updated_at"`
}

type Task struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Priority    string   `json:"priority" bson:"priority"`
	Status      string   `json:"status" bson:"status"`
	DueDate     string   `json:"due_date" bson:"due_date"`
	Tags        []string `json:"tags" bson:"tags"`
	Assignee    string   `json:"assignee" bson:"assignee"`
	ProjectID   string   `json:"project_id" bson:"project_id"`
	TeamID      string   `json:"team_id" bson:"team_id"`
	CreatedBy   string   `json:"created_by" bson:"created_by"`
	CreatedAt   int64    `json:"created_at" bson:"created_at"`
	UpdatedAt   int64    `json:"updated_at" bson:"updated_at"`
}

type TimelineEvent struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Kind        string `json:"kind" bson:"kind"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
	Priority    string `json:"priority" bson:"priority"`
	TeamID      string `json:"team_id" bson:"team_id"`
	CreatedBy   string `json:"created_by" bson:"created_by"`
	CreatedAt   int64  `json:"created_at" bson:"created_at"`
}

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Username  string `json:"username" bson:"username"`
	Password  string `json:"password" bson:"password"`
	FullName  string `json:"full_name" bson:"full_name"`
	Role      string `json:"role" bson:"role"`
	TeamID    string `json:"team_id" bson:"team_id"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
	UpdatedAt int64  `json:"updated_at" bson:"updated_at"`
}
