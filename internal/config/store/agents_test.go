package store

import (
	"context"
	"testing"
)

func TestSaveAndGetAgent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	agent := Agent{
		ID:        "local",
		Address:   "/tmp/agent.sock",
		Transport: "unix",
		TokenPath: "/tmp/token",
	}
	if err := s.SaveAgent(ctx, agent); err != nil {
		t.Fatalf("SaveAgent() failed: %v", err)
	}

	got, err := s.GetAgent(ctx, "local")
	if err != nil {
		t.Fatalf("GetAgent() failed: %v", err)
	}
	if got.Address != agent.Address || got.Transport != "unix" || got.TokenPath != agent.TokenPath {
		t.Errorf("GetAgent() = %+v", got)
	}
	if got.LastSeen != "" {
		t.Errorf("LastSeen should start empty, got %q", got.LastSeen)
	}
}

func TestSaveAgentUpsertsAndDefaultsTransport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveAgent(ctx, Agent{ID: "a", Address: "host:1"}); err != nil {
		t.Fatalf("SaveAgent() failed: %v", err)
	}
	if err := s.SaveAgent(ctx, Agent{ID: "a", Address: "host:2", Transport: "tcp"}); err != nil {
		t.Fatalf("SaveAgent() upsert failed: %v", err)
	}

	got, err := s.GetAgent(ctx, "a")
	if err != nil {
		t.Fatalf("GetAgent() failed: %v", err)
	}
	if got.Address != "host:2" || got.Transport != "tcp" {
		t.Errorf("upsert result incorrect: %+v", got)
	}
}

func TestTouchAgent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveAgent(ctx, Agent{ID: "a", Address: "host:1"}); err != nil {
		t.Fatalf("SaveAgent() failed: %v", err)
	}
	if err := s.TouchAgent(ctx, "a"); err != nil {
		t.Fatalf("TouchAgent() failed: %v", err)
	}

	got, err := s.GetAgent(ctx, "a")
	if err != nil {
		t.Fatalf("GetAgent() failed: %v", err)
	}
	if got.LastSeen == "" {
		t.Error("TouchAgent should set last_seen")
	}

	if err := s.TouchAgent(ctx, "ghost"); !IsNotFound(err) {
		t.Errorf("TouchAgent on unknown id should return NotFoundError, got %v", err)
	}
}

func TestListAndDeleteAgents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"b", "a"} {
		if err := s.SaveAgent(ctx, Agent{ID: id, Address: "host:1"}); err != nil {
			t.Fatalf("SaveAgent(%s) failed: %v", id, err)
		}
	}

	agents, err := s.ListAgents(ctx)
	if err != nil {
		t.Fatalf("ListAgents() failed: %v", err)
	}
	if len(agents) != 2 || agents[0].ID != "a" || agents[1].ID != "b" {
		t.Errorf("ListAgents() order incorrect: %+v", agents)
	}

	if err := s.DeleteAgent(ctx, "a"); err != nil {
		t.Fatalf("DeleteAgent() failed: %v", err)
	}
	if err := s.DeleteAgent(ctx, "a"); !IsNotFound(err) {
		t.Errorf("double delete should return NotFoundError, got %v", err)
	}

	agents, err = s.ListAgents(ctx)
	if err != nil {
		t.Fatalf("ListAgents() failed: %v", err)
	}
	if len(agents) != 1 || agents[0].ID != "b" {
		t.Errorf("ListAgents() after delete: %+v", agents)
	}
}
