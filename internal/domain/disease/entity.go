// Package disease models the wheat disease knowledge graph: node labels,
// their display colours and relationship types, the raw ingestion records,
// and the fully extracted Disease aggregate.
package disease

import (
	"sort"
	"strings"

	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/extract"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/lexicon"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
)

// Label is a node label in the knowledge graph.  The set is closed: every
// label carries its own colour, type name, and relationship type, and unknown
// labels are rejected instead of being synthesised from strings.
type Label string

const (
	LabelDisease     Label = "Disease"
	LabelWeather     Label = "Weather"
	LabelGrowthStage Label = "GrowthStage"
	LabelPlantPart   Label = "PlantPart"
	LabelRegion      Label = "Region"
)

// AttributeLabels returns the non-disease labels in canonical order.
func AttributeLabels() []Label {
	return []Label{LabelWeather, LabelGrowthStage, LabelPlantPart, LabelRegion}
}

// Valid reports whether l is one of the closed label set.
func (l Label) Valid() bool {
	switch l {
	case LabelDisease, LabelWeather, LabelGrowthStage, LabelPlantPart, LabelRegion:
		return true
	}
	return false
}

// TypeName returns the lower-case type property stored on nodes.
func (l Label) TypeName() string {
	switch l {
	case LabelDisease:
		return "disease"
	case LabelWeather:
		return "weather"
	case LabelGrowthStage:
		return "growth_stage"
	case LabelPlantPart:
		return "plant_part"
	case LabelRegion:
		return "region"
	}
	return ""
}

// Color returns the display colour stored on nodes of this label.
func (l Label) Color() string {
	switch l {
	case LabelDisease:
		return "#2C3E50"
	case LabelWeather:
		return "#3498DB"
	case LabelGrowthStage:
		return "#9B59B6"
	case LabelPlantPart:
		return "#27AE60"
	case LabelRegion:
		return "#E67E22"
	}
	return ""
}

// Relationship returns the typed edge pointing from a disease node to an
// attribute node of this label.  The disease label itself has no edge type.
func (l Label) Relationship() (string, error) {
	switch l {
	case LabelWeather:
		return "OCCURS_IN_WEATHER", nil
	case LabelGrowthStage:
		return "OCCURS_IN_STAGE", nil
	case LabelPlantPart:
		return "AFFECTS_PART", nil
	case LabelRegion:
		return "OCCURS_IN_REGION", nil
	}
	return "", errors.New(errors.ErrCodeGraphLabelInvalid,
		"label has no relationship type").WithDetail(string(l))
}

// LabelForDimension maps a symptom dimension onto its graph label.
func LabelForDimension(dim lexicon.Dimension) (Label, error) {
	switch dim {
	case lexicon.DimensionWeather:
		return LabelWeather, nil
	case lexicon.DimensionGrowthStage:
		return LabelGrowthStage, nil
	case lexicon.DimensionPlantPart:
		return LabelPlantPart, nil
	case lexicon.DimensionRegion:
		return LabelRegion, nil
	}
	return "", errors.New(errors.ErrCodeGraphLabelInvalid,
		"dimension has no graph label").WithDetail(string(dim))
}

// Record is one raw row of the disease source data, keyed by the fixed CSV
// column contract.
type Record struct {
	// NameAlias is the composite 病害名称(别名) column.
	NameAlias string
	// Pathogen is the 病原 column.
	Pathogen string
	// Symptoms is the 为害特征 column.
	Symptoms string
	// Treatment is the 防治措施 column.
	Treatment string
	// GrowthStageField is the 病害发生生育期 column.
	GrowthStageField string
	// PlantPartField is the 病害发生部位 column.
	PlantPartField string
	// WeatherField is the 气象 column.
	WeatherField string
	// RegionField is the 发病地区 column.
	RegionField string
}

// Validate checks the required fields.  Attribute columns may be empty; the
// name composite, pathogen, symptoms and treatment must not be.
func (r Record) Validate() error {
	missing := []string{}
	if strings.TrimSpace(r.NameAlias) == "" {
		missing = append(missing, "病害名称(别名)")
	}
	if strings.TrimSpace(r.Pathogen) == "" {
		missing = append(missing, "病原")
	}
	if strings.TrimSpace(r.Symptoms) == "" {
		missing = append(missing, "为害特征")
	}
	if strings.TrimSpace(r.Treatment) == "" {
		missing = append(missing, "防治措施")
	}
	if len(missing) > 0 {
		return errors.New(errors.ErrCodeGraphRecordInvalid,
			"record is missing required fields").
			WithDetail(strings.Join(missing, ", "))
	}
	return nil
}

// SplitNameAlias splits the composite 病害名称(别名) value on its first
// opening parenthesis.  Input without a parenthesis yields an empty alias.
func SplitNameAlias(composite string) (name, alias string) {
	parts := strings.Split(composite, "(")
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		alias = strings.TrimRight(parts[1], ")")
	}
	return name, alias
}

// Disease is the fully extracted aggregate ready to be written to the graph.
type Disease struct {
	Name      string
	Alias     string
	Pathogen  string
	Symptoms  string
	Treatment string
	// Attributes holds the canonical terms per attribute label.
	Attributes map[Label][]string
}

// attributeSources lists, per dimension, the record fields scanned for that
// dimension's terms.  Symptom prose doubles as a source for growth stages
// and plant parts; pathogen prose doubles as a weather source.
func attributeSources(r Record) map[lexicon.Dimension][]string {
	return map[lexicon.Dimension][]string{
		lexicon.DimensionWeather:     {r.WeatherField, r.Pathogen},
		lexicon.DimensionGrowthStage: {r.GrowthStageField, r.Symptoms},
		lexicon.DimensionPlantPart:   {r.PlantPartField, r.Symptoms},
		lexicon.DimensionRegion:      {r.RegionField},
	}
}

// Build validates rec and extracts its attribute terms with ex, which must be
// a strict-mode extractor.
func Build(ex *extract.Extractor, rec Record) (*Disease, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	name, alias := SplitNameAlias(rec.NameAlias)
	d := &Disease{
		Name:       name,
		Alias:      alias,
		Pathogen:   rec.Pathogen,
		Symptoms:   rec.Symptoms,
		Treatment:  rec.Treatment,
		Attributes: make(map[Label][]string, 4),
	}

	sources := attributeSources(rec)
	for _, dim := range lexicon.Dimensions() {
		label, err := LabelForDimension(dim)
		if err != nil {
			return nil, err
		}
		terms := make(map[string]struct{})
		for _, field := range sources[dim] {
			extracted, err := ex.Extract(field, dim)
			if err != nil {
				return nil, err
			}
			for _, term := range extracted {
				terms[term] = struct{}{}
			}
		}
		if len(terms) == 0 {
			continue
		}
		list := make([]string, 0, len(terms))
		for term := range terms {
			list = append(list, term)
		}
		sort.Strings(list)
		d.Attributes[label] = list
	}

	return d, nil
}

//Personal.AI order the ending
