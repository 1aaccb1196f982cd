// Package types provides type definitions for structured data used throughout the voice-mirror system.
package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WritingSample is one raw writing sample submitted by a user.
// Samples are immutable once created and owned by exactly one voice profile.
type WritingSample struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	WordCount   int       `json:"word_count"`
	Filename    string    `json:"filename,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// VoiceProfile holds a user's writing samples and, once built, the merged
// style signature plus its narrative summary. ProfileData and SummaryText
// are nil until the first successful build.
type VoiceProfile struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Samples     []WritingSample `json:"samples"`
	ProfileData *StyleSignature `json:"profile_data,omitempty"`
	SummaryText *string         `json:"summary_text,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TotalWords returns the summed word count across all samples.
func (p *VoiceProfile) TotalWords() int {
	total := 0
	for _, s := range p.Samples {
		total += s.WordCount
	}
	return total
}

// FewShotExample is an author-written sentence presented to the model as a
// concrete instance of the target voice. Rewrite always equals Original: the
// sample sentence itself is the ground truth, not a transformation of it.
type FewShotExample struct {
	Original string `json:"original"`
	Rewrite  string `json:"rewrite"`
}

// StructuralMetrics is the deterministic block of a style signature,
// aggregated across all samples at build time.
type StructuralMetrics struct {
	AverageSentenceLength float64              `json:"averageSentenceLength"`
	AverageWordLength     float64              `json:"averageWordLength"`
	PunctuationFrequency  PunctuationFrequency `json:"punctuationFrequency"`
}

// PunctuationFrequency holds punctuation rates per 1000 words, computed from
// summed raw counts over the total word count across all samples.
type PunctuationFrequency struct {
	EmDashesPer1000     int `json:"emDashesPer1000"`
	SemicolonsPer1000   int `json:"semicolonsPer1000"`
	ExclamationsPer1000 int `json:"exclamationsPer1000"`
}

// SentenceStructure describes sentence-level habits.
// Complexity is one of simple|moderate|complex; Variety is low|medium|high.
type SentenceStructure struct {
	AverageLength float64  `json:"averageLength"`
	Complexity    string   `json:"complexity"`
	Variety       string   `json:"variety"`
	Patterns      []string `json:"patterns"`
}

// Vocabulary describes word-choice habits.
// Formality: casual|neutral|formal. Richness: basic|moderate|rich.
// JargonLevel: none|light|moderate|heavy.
type Vocabulary struct {
	Formality   string   `json:"formality"`
	Richness    string   `json:"richness"`
	JargonLevel string   `json:"jargonLevel"`
	Preferences []string `json:"preferences"`
}

// Tone describes voice qualities.
// Warmth: cool|neutral|warm. Directness: indirect|balanced|direct.
// Humor: none|subtle|moderate|strong. Formality: casual|professional|formal.
type Tone struct {
	Warmth     string `json:"warmth"`
	Directness string `json:"directness"`
	Humor      string `json:"humor"`
	Formality  string `json:"formality"`
}

// Punctuation describes punctuation habits.
// EmDashUsage: none|rare|occasional|frequent. SemicolonUsage: none|rare|occasional.
// ExclamationUsage: none|rare.
type Punctuation struct {
	EmDashUsage      string   `json:"emDashUsage"`
	SemicolonUsage   string   `json:"semicolonUsage"`
	ExclamationUsage string   `json:"exclamationUsage"`
	OtherPatterns    []string `json:"otherPatterns"`
}

// ParagraphStyle describes paragraph organization in free text.
type ParagraphStyle struct {
	LeadStyle    string `json:"leadStyle"`
	Organization string `json:"organization"`
	Flow         string `json:"flow"`
}

// StyleProfile is the qualitative block produced by the style profiler.
// Unknown top-level keys returned by the model are retained in Extra so the
// stored profile is forward compatible with richer model output.
type StyleProfile struct {
	SentenceStructure  SentenceStructure          `json:"sentenceStructure"`
	Vocabulary         Vocabulary                 `json:"vocabulary"`
	Tone               Tone                       `json:"tone"`
	Punctuation        Punctuation                `json:"punctuation"`
	ParagraphStyle     ParagraphStyle             `json:"paragraphStyle"`
	RhetoricalPatterns []string                   `json:"rhetoricalPatterns"`
	DistinctiveMarkers []string                   `json:"distinctiveMarkers"`
	Extra              map[string]json.RawMessage `json:"-"`
}

// styleProfileKnownKeys are the fixed top-level keys of the qualitative schema.
var styleProfileKnownKeys = []string{
	"sentenceStructure", "vocabulary", "tone", "punctuation",
	"paragraphStyle", "rhetoricalPatterns", "distinctiveMarkers",
}

// styleProfileAlias avoids recursion in custom (un)marshalling.
type styleProfileAlias StyleProfile

// UnmarshalJSON decodes the fixed schema and captures unknown top-level keys.
func (p *StyleProfile) UnmarshalJSON(data []byte) error {
	var alias styleProfileAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range styleProfileKnownKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		alias.Extra = raw
	}

	*p = StyleProfile(alias)
	return nil
}

// MarshalJSON emits the fixed schema plus any retained unknown keys.
func (p StyleProfile) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(styleProfileAlias(p))
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range p.Extra {
		if _, exists := merged[key]; !exists {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// StyleSignature is the canonical merged record of structural and qualitative
// writing-style metrics for one user. Produced once per profile build.
type StyleSignature struct {
	StyleProfile
	StructuralMetrics StructuralMetrics `json:"structuralMetrics"`
}

// UnmarshalJSON decodes the qualitative block (with unknown-key capture) and
// the structural block from the same document.
func (s *StyleSignature) UnmarshalJSON(data []byte) error {
	var profile StyleProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return err
	}
	delete(profile.Extra, "structuralMetrics")

	var structural struct {
		StructuralMetrics StructuralMetrics `json:"structuralMetrics"`
	}
	if err := json.Unmarshal(data, &structural); err != nil {
		return err
	}

	s.StyleProfile = profile
	s.StructuralMetrics = structural.StructuralMetrics
	return nil
}

// MarshalJSON emits the qualitative block plus the structural block.
func (s StyleSignature) MarshalJSON() ([]byte, error) {
	base, err := s.StyleProfile.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	structural, err := json.Marshal(s.StructuralMetrics)
	if err != nil {
		return nil, err
	}
	merged["structuralMetrics"] = structural
	return json.Marshal(merged)
}
