package service

import (
	"github.com/windfall/pitch_service/internal/errors"
)

// Soundscape is an ambient track the practice UI can play while recording.
type Soundscape struct {
	ID          string   `json:"soundscape_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AudioURL    string   `json:"audio_url"`
	Tags        []string `json:"tags"`
}

// PitchTemplate is a suggested pitch structure.
type PitchTemplate struct {
	ID          string   `json:"template_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Structure   []string `json:"structure"`
}

// SubscriptionTier describes a plan. Tiers are informational only.
type SubscriptionTier struct {
	ID       string   `json:"tier_id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"` // USD per month
	Features []string `json:"features"`
}

var soundscapes = []Soundscape{
	{
		ID:          "focus-flow",
		Name:        "Focus Flow",
		Description: "Gentle ambient sounds to enhance concentration",
		AudioURL:    "/audio/focus-flow.mp3",
		Tags:        []string{"focus", "ambient", "productivity"},
	},
	{
		ID:          "investor-calm",
		Name:        "Investor Calm",
		Description: "Sophisticated background for confident delivery",
		AudioURL:    "/audio/investor-calm.mp3",
		Tags:        []string{"confidence", "professional", "calm"},
	},
	{
		ID:          "creative-spark",
		Name:        "Creative Spark",
		Description: "Inspiring sounds to boost creative thinking",
		AudioURL:    "/audio/creative-spark.mp3",
		Tags:        []string{"creativity", "inspiration", "energy"},
	},
	{
		ID:          "boardroom-ready",
		Name:        "Boardroom Ready",
		Description: "Executive-level ambiance for high-stakes pitches",
		AudioURL:    "/audio/boardroom-ready.mp3",
		Tags:        []string{"executive", "professional", "authority"},
	},
}

var pitchTemplates = []PitchTemplate{
	{
		ID:          "elevator-pitch",
		Name:        "Elevator Pitch",
		Description: "30-60 second compelling introduction",
		Structure:   []string{"Hook/Problem Statement", "Solution Overview", "Market Opportunity", "Call to Action"},
	},
	{
		ID:          "investor-deck",
		Name:        "Investor Deck Pitch",
		Description: "10-15 minute comprehensive presentation",
		Structure:   []string{"Problem & Market Size", "Solution & Product Demo", "Business Model", "Traction & Metrics", "Team & Funding Ask"},
	},
	{
		ID:          "demo-day",
		Name:        "Demo Day Pitch",
		Description: "3-5 minute high-impact presentation",
		Structure:   []string{"Compelling Hook", "Problem & Solution", "Traction Highlights", "Funding & Vision"},
	},
}

var subscriptionTiers = []SubscriptionTier{
	{
		ID:    "sound-check",
		Name:  "Sound Check",
		Price: 19,
		Features: []string{
			"Basic pitch recording",
			"3 AI feedback sessions per month",
			"Access to 5 soundscapes",
			"Basic pitch templates",
		},
	},
	{
		ID:    "pitch-perfect",
		Name:  "Pitch Perfect",
		Price: 49,
		Features: []string{
			"Unlimited pitch recording",
			"Advanced AI feedback",
			"Custom soundscape creation",
			"Advanced pitch templates",
			"Performance analytics",
		},
	},
	{
		ID:    "investor-ready",
		Name:  "Investor Ready",
		Price: 99,
		Features: []string{
			"Everything in Pitch Perfect",
			"Priority support",
			"Exclusive soundscapes",
			"Investor introduction platform",
			"Personal pitch coach sessions",
		},
	},
}

// CatalogService serves the static practice catalogs. All results are copies.
type CatalogService struct{}

// NewCatalogService creates a new Catalog service.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Soundscapes returns every soundscape in display order.
func (s *CatalogService) Soundscapes() []Soundscape {
	out := make([]Soundscape, len(soundscapes))
	for i, sc := range soundscapes {
		out[i] = copySoundscape(sc)
	}
	return out
}

// Soundscape returns a single soundscape by ID.
func (s *CatalogService) Soundscape(id string) (*Soundscape, error) {
	for _, sc := range soundscapes {
		if sc.ID == id {
			c := copySoundscape(sc)
			return &c, nil
		}
	}
	return nil, errors.NotFound("soundscape")
}

// PitchTemplates returns every pitch template.
func (s *CatalogService) PitchTemplates() []PitchTemplate {
	out := make([]PitchTemplate, len(pitchTemplates))
	for i, tpl := range pitchTemplates {
		tpl.Structure = append([]string(nil), tpl.Structure...)
		out[i] = tpl
	}
	return out
}

// SubscriptionTiers returns the plans from cheapest to most expensive.
func (s *CatalogService) SubscriptionTiers() []SubscriptionTier {
	out := make([]SubscriptionTier, len(subscriptionTiers))
	for i, tier := range subscriptionTiers {
		tier.Features = append([]string(nil), tier.Features...)
		out[i] = tier
	}
	return out
}

func copySoundscape(sc Soundscape) Soundscape {
	sc.Tags = append([]string(nil), sc.Tags...)
	return sc
}
