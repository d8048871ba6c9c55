// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categorize

import "github.com/pdiddy/study-triage/pkg/types"

// defaultTable is the built-in category table for clinical-study triage.
// Some keywords appear in more than one category on purpose ("adherence",
// "medication", "alternative treatment").
var defaultTable = types.CategoryTable{
	{Name: "Study Design", Keywords: []string{
		"study design", "methodology", "randomized controlled trial",
		"cross-sectional", "observational", "longitudinal",
	}},
	{Name: "Population", Keywords: []string{
		"sample size", "participants", "demographics", "age", "gender",
		"education", "employment", "location",
	}},
	{Name: "Health Condition", Keywords: []string{
		"health condition", "disease", "disorder", "depression", "anxiety",
		"stress", "psychotic", "schizophrenia",
	}},
	{Name: "Intervention Type", Keywords: []string{
		"treatment", "intervention", "medication", "therapy", "herbal",
		"digital intervention", "smartphone app", "prescription",
	}},
	{Name: "Control Group", Keywords: []string{
		"control group", "placebo", "alternative treatment", "standard treatment",
	}},
	{Name: "Outcome Measures", Keywords: []string{
		"outcome measure", "scale", "assessment", "evaluation", "PHQ-9",
		"HAMA", "GAD-7", "HAMD", "adherence",
	}},
	{Name: "Duration", Keywords: []string{
		"duration", "follow-up period", "weeks", "months", "years",
	}},
	{Name: "Efficacy", Keywords: []string{
		"efficacy", "effectiveness", "symptom reduction", "clinical significance",
	}},
	{Name: "Adverse Events", Keywords: []string{
		"side effects", "adverse effects", "tolerance", "drug interaction",
		"medication response",
	}},
	{Name: "Cultural and Socioeconomic Factors", Keywords: []string{
		"cultural beliefs", "stigma", "financial barriers", "social support",
	}},
	{Name: "Data Collection Methods", Keywords: []string{
		"data collection", "survey", "self-report", "clinical assessment",
	}},
	{Name: "Statistical Analysis", Keywords: []string{
		"statistical analysis", "regression model", "chi-square test",
		"t-test", "mixed modeling",
	}},
	{Name: "Engagement/Adherence", Keywords: []string{
		"adherence", "compliance", "dropout rate", "user engagement",
	}},
	{Name: "Comparison with Standard Treatments", Keywords: []string{
		"comparison", "benchmark", "standard medication", "alternative treatment",
	}},
	{Name: "Mode of Delivery", Keywords: []string{
		"mode of delivery", "digital", "mobile app", "medication", "infusion",
	}},
	{Name: "Key Findings", Keywords: []string{
		"conclusion", "findings", "results", "summary",
	}},
}

// DefaultTable returns a fresh copy of the built-in 16-category table.
func DefaultTable() types.CategoryTable {
	return defaultTable.Clone()
}
