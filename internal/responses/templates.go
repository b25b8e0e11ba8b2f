// Package responses loads the response template pools and renders phrasings
// from them. A pool is an ordered list of interchangeable format strings with
// named placeholders; which one is used for a given response is uniformly
// random, with the randomness source injected so tests can pin it.
package responses

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// Categories the responder renders from. Load fails fast when any of these
// is missing from the template document.
const (
	CategoryCurrent           = "current"
	CategoryDate              = "date"
	CategoryWeekday           = "weekday"
	CategoryDateTime          = "date_time"
	CategoryTimePeriod        = "time_period"
	CategoryTimePeriodDefined = "time_period_defined"
	CategoryDatePeriodWeekend = "date_period_weekend"
	CategoryDatePeriod        = "date_period"
	CategoryActivityYes       = "activity_yes"
	CategoryActivityNo        = "activity_no"
	CategoryCondition         = "condition"
	CategoryOutfit            = "outfit"
	CategoryYes               = "yes"
	CategoryNo                = "no"
	CategoryCold              = "cold"
	CategoryChilly            = "chilly"
	CategoryWarm              = "warm"
	CategoryHot               = "hot"
)

var requiredCategories = []string{
	CategoryCurrent, CategoryDate, CategoryWeekday, CategoryDateTime,
	CategoryTimePeriod, CategoryTimePeriodDefined, CategoryDatePeriodWeekend,
	CategoryDatePeriod, CategoryActivityYes, CategoryActivityNo,
	CategoryCondition, CategoryOutfit, CategoryYes, CategoryNo,
	CategoryCold, CategoryChilly, CategoryWarm, CategoryHot,
}

// PickFunc selects an index in [0, n). Production uses a seeded math/rand;
// tests substitute a deterministic selector.
type PickFunc func(n int) int

// Pools holds every loaded template pool.
type Pools struct {
	pools map[string][]string
	pick  PickFunc
}

// Load parses the embedded template document and verifies every category the
// responder references has at least one template. A missing category is a
// configuration error and the caller should refuse to start.
func Load(pick PickFunc) (*Pools, error) {
	pools := make(map[string][]string)
	if err := yaml.Unmarshal(templatesYAML, &pools); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	for _, cat := range requiredCategories {
		if len(pools[cat]) == 0 {
			return nil, fmt.Errorf("template category %q has no templates", cat)
		}
	}

	if pick == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		pick = rng.Intn
	}

	return &Pools{pools: pools, pick: pick}, nil
}

// Render picks one template from the category's pool and substitutes the
// named placeholders. Categories are verified at load time, so an unknown
// category here is a programming error and renders empty.
func (p *Pools) Render(category string, args map[string]string) string {
	pool := p.pools[category]
	if len(pool) == 0 {
		return ""
	}

	tmpl := pool[p.pick(len(pool))]
	if len(args) == 0 {
		return tmpl
	}

	oldnew := make([]string, 0, len(args)*2)
	for name, value := range args {
		oldnew = append(oldnew, "{"+name+"}", value)
	}
	return strings.NewReplacer(oldnew...).Replace(tmpl)
}

// Pool returns the raw templates of a category. Used by tests to assert a
// response belongs to the set of acceptable phrasings.
func (p *Pools) Pool(category string) []string {
	return p.pools[category]
}
