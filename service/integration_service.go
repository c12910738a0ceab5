package service

import (
	"context"
	"log"
	"time"

	"github.com/gestorhq/gestor-be/types"
)

// Creation collaborators the reconciler writes through. The mongo
// repositories satisfy these; tests substitute fakes.
type ProjectCreator interface {
	CreateProject(ctx context.Context, project *types.Project) error
}

type TaskCreator interface {
	CreateTask(ctx context.Context, task *types.Task) error
}

type TimelineCreator interface {
	CreateEvent(ctx context.Context, event *types.TimelineEvent) error
}

// ProgressFunc receives one notification per attempted entity. May be
// nil.
type ProgressFunc func(types.IntegrationProgress)

// IntegrationService materializes an ExtractionResult entity by entity.
// Creation is sequential within each collection so create-order stays
// deterministic and progress reporting stays simple. Each attempt is
// independently isolated: one failure never aborts the rest.
type IntegrationService struct {
	projects ProjectCreator
	tasks    TaskCreator
	timeline TimelineCreator
}

func NewIntegrationService(projects ProjectCreator, tasks TaskCreator, timeline TimelineCreator) *IntegrationService {
	return &IntegrationService{
		projects: projects,
		tasks:    tasks,
		timeline: timeline,
	}
}

func (s *IntegrationService) Integrate(ctx context.Context, result types.ExtractionResult, teamID, userID string, report ProgressFunc) types.IntegrationOutcome {
	now := time.Now().Unix()
	total := len(result.Projects) + len(result.Tasks) + len(result.Timeline)
	done := 0

	notify := func(collection, title string, created bool) {
		done++
		if report != nil {
			report(types.IntegrationProgress{
				Collection: collection,
				Title:      title,
				Created:    created,
				Done:       done,
				Total:      total,
			})
		}
	}

	var outcome types.IntegrationOutcome

	for _, p := range result.Projects {
		outcome.Projects.Attempted++
		err := s.projects.CreateProject(ctx, &types.Project{
			Name:            p.Name,
			Description:     p.Description,
			Budget:          p.Budget,
			StartDate:       p.StartDate,
			ExpectedEndDate: p.ExpectedEndDate,
			Technologies:    p.Technologies,
			Status:          p.Status,
			TeamID:          teamID,
			CreatedBy:       userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			log.Printf("integration: create project %q failed: %v", p.Name, err)
		} else {
			outcome.Projects.Created++
		}
		notify("projects", p.Name, err == nil)
	}

	for _, t := range result.Tasks {
		outcome.Tasks.Attempted++
		err := s.tasks.CreateTask(ctx, &types.Task{
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			Status:      "open",
			DueDate:     t.DueDate,
			Tags:        t.Tags,
			Assignee:    t.SuggestedOwner,
			TeamID:      teamID,
			CreatedBy:   userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			log.Printf("integration: create task %q failed: %v", t.Title, err)
		} else {
			outcome.Tasks.Created++
		}
		notify("tasks", t.Title, err == nil)
	}

	for _, e := range result.Timeline {
		outcome.Timeline.Attempted++
		err := s.timeline.CreateEvent(ctx, &types.TimelineEvent{
			Title:       e.Title,
			Description: e.Description,
			Kind:        e.Kind,
			Timestamp:   e.Timestamp,
			Priority:    e.Priority,
			TeamID:      teamID,
			CreatedBy:   userID,
			CreatedAt:   now,
		})
		if err != nil {
			log.Printf("integration: create event %q failed: %v", e.Title, err)
		} else {
			outcome.Timeline.Created++
		}
		notify("timeline", e.Title, err == nil)
	}

	log.Printf("integration for team %s: %s", teamID, outcome.Summary())
	return outcome
}
