// Package vocab holds the static classification tables the responder
// consults: which activities and outfits belong to which season or weather
// category, which named conditions map to which provider probability field,
// and the condition phrase/patch tables.
package vocab

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed vocab.yaml
var vocabYAML []byte

// ActivityClass describes the season-suitability of an activity.
type ActivityClass int

const (
	ActivityUnknown ActivityClass = iota
	ActivityAlwaysOK
	ActivityWinterOnly
	ActivitySummerOnly
)

// OutfitClass describes the weather category an outfit belongs to.
type OutfitClass int

const (
	OutfitUnknown OutfitClass = iota
	OutfitColdWeather
	OutfitWarmWeather
	OutfitHotWeather
	OutfitRain
	OutfitSnow
	OutfitSun
)

// Tables is the read-only vocabulary loaded at process start.
type Tables struct {
	winter map[string]struct{}
	summer map[string]struct{}
	demi   map[string]struct{}

	outfits map[string]OutfitClass

	conditionFields  map[string]string
	unsupported      map[string]struct{}
	conditionPhrases map[string]string
	conditionPatches map[string]string
}

type vocabFile struct {
	WinterActivities []string `yaml:"winter_activities"`
	SummerActivities []string `yaml:"summer_activities"`
	DemiActivities   []string `yaml:"demi_activities"`

	ColdWeatherOutfits []string `yaml:"cold_weather_outfits"`
	WarmWeatherOutfits []string `yaml:"warm_weather_outfits"`
	HotWeatherOutfits  []string `yaml:"hot_weather_outfits"`
	RainOutfits        []string `yaml:"rain_outfits"`
	SnowOutfits        []string `yaml:"snow_outfits"`
	SunOutfits         []string `yaml:"sun_outfits"`

	ConditionFields       map[string]string `yaml:"condition_fields"`
	UnsupportedConditions []string          `yaml:"unsupported_conditions"`
	ConditionPhrases      map[string]string `yaml:"condition_phrases"`
	ConditionPatches      map[string]string `yaml:"condition_patches"`
}

// Load parses the embedded vocabulary document.
func Load() (*Tables, error) {
	var f vocabFile
	if err := yaml.Unmarshal(vocabYAML, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}

	t := &Tables{
		winter:           toSet(f.WinterActivities),
		summer:           toSet(f.SummerActivities),
		demi:             toSet(f.DemiActivities),
		outfits:          make(map[string]OutfitClass),
		conditionFields:  f.ConditionFields,
		unsupported:      toSet(f.UnsupportedConditions),
		conditionPhrases: f.ConditionPhrases,
		conditionPatches: f.ConditionPatches,
	}

	for class, list := range map[OutfitClass][]string{
		OutfitColdWeather: f.ColdWeatherOutfits,
		OutfitWarmWeather: f.WarmWeatherOutfits,
		OutfitHotWeather:  f.HotWeatherOutfits,
		OutfitRain:        f.RainOutfits,
		OutfitSnow:        f.SnowOutfits,
		OutfitSun:         f.SunOutfits,
	} {
		for _, name := range list {
			t.outfits[name] = class
		}
	}

	if len(t.conditionFields) == 0 {
		return nil, fmt.Errorf("vocabulary has no condition field mappings")
	}

	return t, nil
}

// ClassifyActivity reports the season-suitability class of an activity.
func (t *Tables) ClassifyActivity(activity string) ActivityClass {
	if _, ok := t.demi[activity]; ok {
		return ActivityAlwaysOK
	}
	if _, ok := t.winter[activity]; ok {
		return ActivityWinterOnly
	}
	if _, ok := t.summer[activity]; ok {
		return ActivitySummerOnly
	}
	return ActivityUnknown
}

// ClassifyOutfit reports the weather category of an outfit.
func (t *Tables) ClassifyOutfit(outfit string) OutfitClass {
	return t.outfits[outfit]
}

// ConditionField returns the provider probability field for a named
// condition, e.g. "rain" -> "chanceofrain".
func (t *Tables) ConditionField(condition string) (string, bool) {
	f, ok := t.conditionFields[condition]
	return f, ok
}

// IsUnsupported reports whether the provider cannot answer for a condition.
func (t *Tables) IsUnsupported(condition string) bool {
	_, ok := t.unsupported[condition]
	return ok
}

// ConditionPhrase translates an English condition name into the Spanish
// phrase used inside templates. Unknown names pass through unchanged.
func (t *Tables) ConditionPhrase(condition string) string {
	if p, ok := t.conditionPhrases[condition]; ok {
		return p
	}
	return condition
}

// PatchConditionText rewrites provider condition labels that read badly
// when embedded in a sentence.
func (t *Tables) PatchConditionText(label string) string {
	if p, ok := t.conditionPatches[label]; ok {
		return p
	}
	return label
}

func toSet(list []string) map[string]struct{} {
	s := make(map[string]struct{}, len(list))
	for _, v := range list {
		s[v] = struct{}{}
	}
	return s
}
