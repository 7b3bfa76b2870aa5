// Package analysis implements the deterministic resume analysis pipeline:
// catalog-based skill extraction, role suggestion, target job comparison
// and ATS-style scoring against a job description.
package analysis

import "strings"

// skillsMatch reports whether two skill labels refer to the same skill.
// Matching is a case-insensitive substring test in both directions, so
// "React" matches "React Native" and vice versa. Broad labels therefore
// absorb narrow ones, which is intentional.
func skillsMatch(a, b string) bool {
	al := strings.ToLower(a)
	bl := strings.ToLower(b)
	return strings.Contains(al, bl) || strings.Contains(bl, al)
}

// anySkillMatches reports whether any of the candidate's skills matches
// the given skill label
func anySkillMatches(userSkills []string, skill string) bool {
	for _, us := range userSkills {
		if skillsMatch(us, skill) {
			return true
		}
	}
	return false
}

func containsExact(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
