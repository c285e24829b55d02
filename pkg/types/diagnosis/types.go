// Package diagnosis defines the wire-level types shared between the HTTP
// interface layer, the Go client, and the application services: symptom
// fingerprints, disease candidates, and session records.
package diagnosis

import (
	"encoding/json"
	"fmt"
	"time"
)

// Terms holds the canonical terms collected for one symptom dimension.
//
// Its JSON form mirrors the original wire contract: a single term is encoded
// as a bare string, multiple terms as an array of strings, and an empty value
// is omitted entirely by the enclosing struct.
type Terms []string

// MarshalJSON encodes a singleton as a bare string and anything longer as a
// JSON array.
func (t Terms) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts both the bare-string and the array encodings.
func (t *Terms) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Terms{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("terms must be a string or an array of strings: %w", err)
	}
	*t = Terms(many)
	return nil
}

// Contains reports whether term is present.
func (t Terms) Contains(term string) bool {
	for _, v := range t {
		if v == term {
			return true
		}
	}
	return false
}

// Fingerprint is the structured symptom record accumulated over a
// conversation.  A dimension with no collected terms is absent (nil).
type Fingerprint struct {
	PlantPart   Terms `json:"plant_part,omitempty"`
	Weather     Terms `json:"weather,omitempty"`
	GrowthStage Terms `json:"growth_stage,omitempty"`
	Region      Terms `json:"region,omitempty"`
}

// IsEmpty reports whether no dimension holds any terms.
func (f Fingerprint) IsEmpty() bool {
	return len(f.PlantPart) == 0 && len(f.Weather) == 0 &&
		len(f.GrowthStage) == 0 && len(f.Region) == 0
}

// Merge combines the receiver with previously collected history.  Dimensions
// present on the receiver win; history only fills dimensions the receiver
// lacks.  Neither input is mutated.
func (f Fingerprint) Merge(history Fingerprint) Fingerprint {
	out := f
	if len(out.PlantPart) == 0 {
		out.PlantPart = history.PlantPart
	}
	if len(out.Weather) == 0 {
		out.Weather = history.Weather
	}
	if len(out.GrowthStage) == 0 {
		out.GrowthStage = history.GrowthStage
	}
	if len(out.Region) == 0 {
		out.Region = history.Region
	}
	return out
}

// DiseaseCandidate is one possible diagnosis returned by the matcher.
type DiseaseCandidate struct {
	Name          string  `json:"name"`
	Alias         string  `json:"alias,omitempty"`
	Pathogen      string  `json:"pathogen,omitempty"`
	Description   string  `json:"description,omitempty"`
	ControlMethod string  `json:"control_method,omitempty"`
	MatchCount    int64   `json:"match_count"`
	MatchRatio    float64 `json:"match_ratio"`
}

// Conversation roles stored in session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn persisted in the session history.
type Message struct {
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	Timestamp float64 `json:"timestamp"`
}

// SessionSummary describes one stored conversation for listing endpoints.
type SessionSummary struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	CreatedAt    float64 `json:"created_at"`
	UpdatedAt    float64 `json:"updated_at"`
	MessageCount int     `json:"message_count"`
}

// GraphStats reports per-label node counts and the total relationship count
// of the knowledge graph.
type GraphStats struct {
	Nodes         map[string]int64 `json:"nodes"`
	Relationships int64            `json:"relationships"`
}

// RebuildReport summarises a knowledge-graph rebuild run.
type RebuildReport struct {
	Processed  int           `json:"processed"`
	Failed     int           `json:"failed"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
}

//Personal.AI order the ending
