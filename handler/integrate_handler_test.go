package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestorhq/gestor-be/service"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

type memProjectStore struct {
	created []*types.Project
}

func (m *memProjectStore) CreateProject(ctx context.Context, p *types.Project) error {
	m.created = append(m.created, p)
	return nil
}

type memTaskStore struct {
	created []*types.Task
	failOn  string
}

func (m *memTaskStore) CreateTask(ctx context.Context, task *types.Task) error {
	if task.Title == m.failOn {
		return errors.New("insert failed")
	}
	m.created = append(m.created, task)
	return nil
}

type memTimelineStore struct {
	created []*types.TimelineEvent
}

func (m *memTimelineStore) CreateEvent(ctx context.Context, e *types.TimelineEvent) error {
	m.created = append(m.created, e)
	return nil
}

func newIntegrateRouter(projects *memProjectStore, tasks *memTaskStore, timeline *memTimelineStore) *gin.Engine {
	svc := service.NewIntegrationService(projects, tasks, timeline)
	router := gin.New()
	router.POST("/api/v1/documents/integrate", NewIntegrationHandler(svc).HandleIntegrate)
	return router
}

func TestIntegrateEndpoint(t *testing.T) {
	projects := &memProjectStore{}
	tasks := &memTaskStore{}
	timeline := &memTimelineStore{}
	router := newIntegrateRouter(projects, tasks, timeline)

	payload := `{
		"projects": [{"name": "Sistema", "budget": 100000, "status": "planning"}],
		"tasks": [{"title": "Levantamento", "priority": "high", "suggestedOwner": "Ana"}],
		"timeline": [{"title": "Kickoff", "kind": "milestone"}],
		"teamId": "team-9",
		"userId": "user-3"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/integrate", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool                    `json:"success"`
		Data    types.IntegrateResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success || !envelope.Data.Integrated {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
	if envelope.Data.Summary != "3 of 3 created" {
		t.Errorf("summary = %q", envelope.Data.Summary)
	}
	if len(projects.created) != 1 || projects.created[0].TeamID != "team-9" {
		t.Errorf("project not persisted with team: %+v", projects.created)
	}
	if len(tasks.created) != 1 || tasks.created[0].Assignee != "Ana" {
		t.Errorf("task owner mapping: %+v", tasks.created)
	}
	if len(timeline.created) != 1 || timeline.created[0].CreatedBy != "user-3" {
		t.Errorf("event attribution: %+v", timeline.created)
	}
}

func TestIntegrateEndpointPartial(t *testing.T) {
	router := newIntegrateRouter(&memProjectStore{}, &memTaskStore{failOn: "Quebrada"}, &memTimelineStore{})

	payload := `{
		"projects": [],
		"tasks": [{"title": "Quebrada"}, {"title": "Boa"}],
		"timeline": [],
		"teamId": "t",
		"userId": "u"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/integrate", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("partial failure must still be 200, got %d", rec.Code)
	}
	var envelope struct {
		Data types.IntegrateResponse `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &envelope)
	if envelope.Data.Summary != "1 of 2 created" {
		t.Errorf("summary = %q", envelope.Data.Summary)
	}
	if !envelope.Data.Integrated {
		t.Error("one created entity still counts as integrated")
	}
	if envelope.Data.Outcome.FullyIntegrated() {
		t.Error("outcome must not report full integration")
	}
}

func TestIntegrateEndpointBadBody(t *testing.T) {
	router := newIntegrateRouter(&memProjectStore{}, &memTaskStore{}, &memTimelineStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/integrate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
