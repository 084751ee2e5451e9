package service

import (
	"context"
	"errors"
	"testing"

	"shotline/internal/domain"
	"shotline/internal/domain/services"
)

func TestCreateProjectDerivesShort(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), testLogger())

	tests := []struct {
		name string
		want string
	}{
		{"Blade Runner", "BLADER"},
		{"Up", "UP"},
		{"war of the worlds", "WAROFT"},
	}

	for _, tt := range tests {
		project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{Name: tt.name})
		if err != nil {
			t.Fatalf("CreateProject(%q): %v", tt.name, err)
		}
		if project.Short != tt.want {
			t.Errorf("short for %q = %q, want %q", tt.name, project.Short, tt.want)
		}
	}
}

func TestCreateProjectKeepsExplicitShort(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), testLogger())

	project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
		Name:  "Blade Runner",
		Short: "BR49",
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.Short != "BR49" {
		t.Errorf("short = %q, want BR49", project.Short)
	}
}

func TestCreateProjectRequiresName(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), testLogger())

	_, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
