package templates

import "github.com/ragweave/maestro/pkg/models"

func boolPtr(v bool) *bool { return &v }

// builtinOrder fixes the declaration order used by Choose. More specific
// templates come first; standard is the catch-all fallback.
var builtinOrder = []string{"simple_lookup", "web_augmented", "deep_reasoning", "standard"}

func builtinTemplates() map[string]*Template {
	return map[string]*Template{
		"simple_lookup": {
			Name:        "simple_lookup",
			Description: "Direct retrieval for factual lookups, no reasoning pass",
			Stages: []string{
				models.StageRetrieval,
				models.StageResponsePackaging,
			},
			Select: &Selector{
				NeedsWeb:   boolPtr(false),
				Complexity: []string{"low"},
			},
		},
		"web_augmented": {
			Name:        "web_augmented",
			Description: "Retrieval supplemented with live web fetches before reasoning",
			Stages: []string{
				models.StageIntent,
				models.StageRetrieval,
				models.StageWebAugmentation,
				models.StageReasoning,
				models.StageModeration,
				models.StageResponsePackaging,
			},
			Select: &Selector{
				NeedsWeb: boolPtr(true),
			},
		},
		"deep_reasoning": {
			Name:        "deep_reasoning",
			Description: "Standard pipeline with an enlarged reasoning budget",
			Stages: []string{
				models.StageIntent,
				models.StageRetrieval,
				models.StageReasoning,
				models.StageModeration,
				models.StageResponsePackaging,
			},
			ReasoningMaxTokens: 8192,
			Select: &Selector{
				Complexity: []string{"high"},
			},
		},
		"standard": {
			Name:        "standard",
			Description: "Default pipeline: classify, retrieve, reason, moderate",
			Stages: []string{
				models.StageIntent,
				models.StageRetrieval,
				models.StageReasoning,
				models.StageModeration,
				models.StageResponsePackaging,
			},
		},
	}
}
