// File: internal/services/resources/seed.go
package resources

import "github.com/chadhq/chad-backend/internal/domain"

// Seed returns the static healing-resources catalog. The list never changes
// at runtime.
func Seed() []domain.Resource {
	return []domain.Resource{
		{
			ID:          "1",
			Title:       "Understanding Anxiety",
			Description: "A comprehensive guide to understanding and managing anxiety.",
			Link:        "https://example.com/anxiety-guide",
			Category:    domain.CategoryArticle,
			Body: `# Understanding Anxiety

Anxiety is the body's natural response to stress. It becomes a problem when
the alarm keeps ringing after the danger has passed.

## What helps

- **Name it.** Labelling the feeling lowers its intensity.
- **Slow the breath.** Longer exhales signal safety to the nervous system.
- **Move.** A short walk metabolises stress hormones.

If anxiety interferes with daily life, talking to a professional is the
right next step.`,
		},
		{
			ID:          "2",
			Title:       "Meditation for Beginners",
			Description: "Learn the basics of meditation with this introductory video.",
			Link:        "https://example.com/meditation-video",
			Category:    domain.CategoryVideo,
			Body: `# Meditation for Beginners

Ten minutes a day is enough to start. Sit comfortably, close your eyes and
follow the breath. When the mind wanders, notice it kindly and return.`,
		},
		{
			ID:          "3",
			Title:       "Stress Relief Techniques",
			Description: "Audio guide with practical stress relief techniques you can use anywhere.",
			Link:        "https://example.com/stress-relief-audio",
			Category:    domain.CategoryAudio,
			Body: `# Stress Relief Techniques

A guided audio session covering progressive muscle relaxation, grounding
with the five senses, and box breathing.`,
		},
		{
			ID:          "4",
			Title:       "National Mental Health Resources",
			Description: "Directory of mental health resources and helplines.",
			Link:        "https://example.com/mental-health-resources",
			Category:    domain.CategoryExternal,
			Body: `# National Mental Health Resources

A curated directory of crisis lines, support groups and low-cost counselling
services. If you are in immediate danger, contact local emergency services.`,
		},
	}
}
