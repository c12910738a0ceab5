package types

import "fmt"

// CollectionTally is the fold result for one entity collection.
type CollectionTally struct {
	Attempted int `json:"attempted"`
	Created   int `json:"created"`
}

// IntegrationOutcome reports how many extracted entities could be
// materialized into the store. It is a summary, never an error: a failed
// entity is counted, logged and skipped.
type IntegrationOutcome struct {
	Projects CollectionTally `json:"projects"`
	Tasks    CollectionTally `json:"tasks"`
	Timeline CollectionTally `json:"timeline"`
}

func (o IntegrationOutcome) TotalAttempted() int {
	return o.Projects.Attempted + o.Tasks.Attempted + o.Timeline.Attempted
}

func (o IntegrationOutcome) TotalCreated() int {
	return o.Projects.Created + o.Tasks.Created + o.Timeline.Created
}

func (o IntegrationOutcome) FullyIntegrated() bool {
	return o.TotalCreated() == o.TotalAttempted()
}

// Summary renders the user-facing "N of M created" line.
func (o IntegrationOutcome) Summary() string {
	return fmt.Sprintf("%d of %d created", o.TotalCreated(), o.TotalAttempted())
}

// IntegrationProgress is a single step notification emitted while the
// reconciler walks the extraction result.
type IntegrationProgress struct {
	Collection string `json:"collection"`
	Title      string `json:"title"`
	Created    bool   `json:"created"`
	Done       int    `json:"done"`
	Total      int    `json:"total"`
}
