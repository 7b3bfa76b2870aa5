package analysis

import (
	"testing"

	"resumelens/internal/catalog"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

func TestCompareWithTargetJobUnknownTitle(t *testing.T) {
	_, err := CompareWithTargetJob("Underwater Basket Weaver", types.ExtractedSkills{})
	if err == nil {
		t.Fatal("expected error for unknown job title")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Type != apperrors.ErrorTypeNotFound {
		t.Errorf("expected not_found type, got %s", appErr.Type)
	}
	if appErr.Code != apperrors.ErrCodeJobNotFound {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeJobNotFound, appErr.Code)
	}
}

func TestCompareWithTargetJobReactDeveloper(t *testing.T) {
	skills := skillProfile([]string{"React", "JavaScript", "HTML", "CSS", "TypeScript"}, nil)

	result, err := CompareWithTargetJob("React Developer", skills)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 4 of 4 required (70 points) plus 5 of 11 total (13.6 points)
	if result.MatchPercentage != 84 {
		t.Errorf("expected match 84, got %d", result.MatchPercentage)
	}
	if len(result.MissingRequiredSkills) != 0 {
		t.Errorf("expected no missing required skills, got %v", result.MissingRequiredSkills)
	}
	if len(result.MatchingSkills) != 5 {
		t.Errorf("expected 5 matching skills, got %v", result.MatchingSkills)
	}
	if result.ExperienceLevel != types.ExperienceMid {
		t.Errorf("expected Mid level, got %s", result.ExperienceLevel)
	}
	if result.SalaryRange != "$85,000 - $115,000" {
		t.Errorf("unexpected salary range %s", result.SalaryRange)
	}

	job := catalog.TargetJobs["React Developer"]
	wantLen := len(job.RequiredSkills) + len(job.PreferredSkills)
	if len(result.SkillsChecklist) != wantLen {
		t.Fatalf("expected checklist of %d items, got %d", wantLen, len(result.SkillsChecklist))
	}

	// Required entries come first and carry high importance
	for i, item := range result.SkillsChecklist {
		if i < len(job.RequiredSkills) {
			if item.Category != types.ChecklistRequired || item.Importance != types.ImportanceHigh {
				t.Errorf("item %d (%s): expected required/high, got %s/%s", i, item.Skill, item.Category, item.Importance)
			}
		} else {
			if item.Category != types.ChecklistPreferred || item.Importance != types.ImportanceMedium {
				t.Errorf("item %d (%s): expected preferred/medium, got %s/%s", i, item.Skill, item.Category, item.Importance)
			}
		}
	}

	for _, item := range result.SkillsChecklist {
		switch item.Skill {
		case "React":
			if !item.HasSkill {
				t.Error("React should be marked as held")
			}
			if item.LearningTime != "2-3 months" {
				t.Errorf("expected curated learning time for React, got %s", item.LearningTime)
			}
		case "Jest":
			if item.HasSkill {
				t.Error("Jest should not be marked as held")
			}
			if item.LearningTime != "1-2 weeks" {
				t.Errorf("expected curated learning time for Jest, got %s", item.LearningTime)
			}
		case "Redux":
			if item.LearningTime != catalog.DefaultPreferredLearningTime {
				t.Errorf("expected fallback learning time for Redux, got %s", item.LearningTime)
			}
		}
	}
}

func TestCompareWithTargetJobNoSkills(t *testing.T) {
	result, err := CompareWithTargetJob("Frontend Developer", types.ExtractedSkills{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MatchPercentage != 0 {
		t.Errorf("expected 0%% match, got %d", result.MatchPercentage)
	}
	if result.ExperienceLevel != types.ExperienceJunior {
		t.Errorf("expected Junior level, got %s", result.ExperienceLevel)
	}
	job := catalog.TargetJobs["Frontend Developer"]
	if len(result.MissingRequiredSkills) != len(job.RequiredSkills) {
		t.Errorf("expected all required skills missing, got %v", result.MissingRequiredSkills)
	}
}

func TestAvailableJobs(t *testing.T) {
	jobs := catalog.AvailableJobs()
	if len(jobs) != len(catalog.TargetJobs) {
		t.Fatalf("expected %d jobs, got %d", len(catalog.TargetJobs), len(jobs))
	}
	if jobs[0].Title != "Frontend Developer" {
		t.Errorf("expected Frontend Developer as most popular, got %s", jobs[0].Title)
	}
	for i := 1; i < len(jobs); i++ {
		if jobs[i].Popularity > jobs[i-1].Popularity {
			t.Errorf("jobs not sorted by popularity at index %d", i)
		}
	}
}
