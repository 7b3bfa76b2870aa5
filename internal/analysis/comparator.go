package analysis

import (
	"fmt"
	"math"

	"resumelens/internal/catalog"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

// CompareWithTargetJob compares a skill profile against one job from the
// target catalog. The job title must match a catalog entry exactly;
// unknown titles return a not-found error.
func CompareWithTargetJob(jobTitle string, skills types.ExtractedSkills) (types.TargetJobComparison, error) {
	job, ok := catalog.TargetJobs[jobTitle]
	if !ok {
		return types.TargetJobComparison{}, apperrors.NewNotFoundError(
			apperrors.ErrCodeJobNotFound,
			fmt.Sprintf("job title %q not found", jobTitle), nil)
	}

	userSkills := skills.AllSkillNames()

	var matching []string
	for _, jobSkill := range append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...) {
		if anySkillMatches(userSkills, jobSkill) {
			matching = append(matching, jobSkill)
		}
	}

	var requiredMatches int
	var missingRequired []string
	for _, req := range job.RequiredSkills {
		if anySkillMatches(userSkills, req) {
			requiredMatches++
		} else {
			missingRequired = append(missingRequired, req)
		}
	}

	var missingPreferred []string
	for _, pref := range job.PreferredSkills {
		if !anySkillMatches(userSkills, pref) {
			missingPreferred = append(missingPreferred, pref)
		}
	}

	matchPercentage := int(math.Round(
		float64(requiredMatches)/float64(len(job.RequiredSkills))*70 +
			float64(len(matching))/float64(len(job.RequiredSkills)+len(job.PreferredSkills))*30))

	level := types.ExperienceJunior
	for _, tier := range types.ExperienceLevels {
		if len(matching) >= job.ExperienceLevels[tier].MinSkills {
			level = tier
		}
	}

	return types.TargetJobComparison{
		JobTitle:               jobTitle,
		MatchPercentage:        matchPercentage,
		MatchingSkills:         matching,
		MissingRequiredSkills:  missingRequired,
		MissingPreferredSkills: missingPreferred,
		ExperienceLevel:        level,
		SalaryRange:            job.ExperienceLevels[level].Salary,
		Description:            job.Description,
		SkillsChecklist:        skillsChecklist(job, userSkills),
	}, nil
}

// skillsChecklist builds one checklist entry per job skill, required
// skills first, annotated with learning metadata from the catalog
func skillsChecklist(job catalog.TargetJob, userSkills []string) []types.SkillChecklistItem {
	checklist := make([]types.SkillChecklistItem, 0, len(job.RequiredSkills)+len(job.PreferredSkills))

	for _, skill := range job.RequiredSkills {
		checklist = append(checklist, checklistItem(skill, types.ChecklistRequired, types.ImportanceHigh,
			catalog.DefaultRequiredLearningTime, userSkills))
	}
	for _, skill := range job.PreferredSkills {
		checklist = append(checklist, checklistItem(skill, types.ChecklistPreferred, types.ImportanceMedium,
			catalog.DefaultPreferredLearningTime, userSkills))
	}

	return checklist
}

func checklistItem(skill string, category types.ChecklistCategory, importance types.Importance,
	fallbackTime string, userSkills []string) types.SkillChecklistItem {
	learningTime := fallbackTime
	resources := catalog.DefaultLearningResources
	if data, ok := catalog.SkillLearningData[skill]; ok {
		learningTime = data.TimeToLearn
		resources = data.Resources
	}

	return types.SkillChecklistItem{
		Skill:        skill,
		Category:     category,
		HasSkill:     anySkillMatches(userSkills, skill),
		Importance:   importance,
		LearningTime: learningTime,
		Resources:    resources,
	}
}
