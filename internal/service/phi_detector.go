package service

import (
	"regexp"
	"sort"
)

// PHI tags reported by the detector.
const (
	PHITagSSN   = "ssn"
	PHITagEmail = "email"
	PHITagPhone = "phone"
	PHITagDOB   = "dob"
	PHITagMRN   = "mrn"
)

// PHIRule pairs a tag with the pattern that triggers it.
type PHIRule struct {
	Tag     string
	Pattern *regexp.Regexp
}

// DefaultPHIRules covers the identifiers most often pasted into free text.
// Dates only count when introduced by a birth-date keyword.
func DefaultPHIRules() []PHIRule {
	return []PHIRule{
		{Tag: PHITagSSN, Pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
		{Tag: PHITagEmail, Pattern: regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)},
		{Tag: PHITagPhone, Pattern: regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\b\d{3}\)?[\s.\-]\d{3}[\s.\-]\d{4}\b`)},
		{Tag: PHITagDOB, Pattern: regexp.MustCompile(`(?i)\b(?:dob|date of birth|born(?: on)?)\b[\s:]*\d{1,4}[/.\-]\d{1,2}[/.\-]\d{1,4}`)},
		{Tag: PHITagMRN, Pattern: regexp.MustCompile(`(?i)\bmrn\b[\s:#]*\d{5,}`)},
	}
}

// RegexPHIDetector implements ports.PHIDetector with a fixed rule set.
type RegexPHIDetector struct {
	rules []PHIRule
}

// NewRegexPHIDetector returns a detector using rules, or DefaultPHIRules when none are given.
func NewRegexPHIDetector(rules ...PHIRule) *RegexPHIDetector {
	if len(rules) == 0 {
		rules = DefaultPHIRules()
	}
	return &RegexPHIDetector{rules: rules}
}

// Detect returns sorted "field:tag" pairs for every rule that matches a field.
func (d *RegexPHIDetector) Detect(fields map[string]string) []string {
	seen := make(map[string]struct{})
	for field, value := range fields {
		if value == "" {
			continue
		}
		for _, r := range d.rules {
			if r.Pattern.MatchString(value) {
				seen[field+":"+r.Tag] = struct{}{}
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
