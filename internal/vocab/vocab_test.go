package vocab

import "testing"

func loadTables(t *testing.T) *Tables {
	t.Helper()
	tables, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tables
}

func TestClassifyActivity(t *testing.T) {
	tables := loadTables(t)

	cases := map[string]ActivityClass{
		"esquiar":         ActivityWinterOnly,
		"hacer snowboard": ActivityWinterOnly,
		"nadar":           ActivitySummerOnly,
		"ir a la playa":   ActivitySummerOnly,
		"correr":          ActivityAlwaysOK,
		"ir de compras":   ActivityAlwaysOK,
		"hacer parapente": ActivityUnknown,
		"":                ActivityUnknown,
	}
	for activity, want := range cases {
		if got := tables.ClassifyActivity(activity); got != want {
			t.Errorf("ClassifyActivity(%q) = %v, expected %v", activity, got, want)
		}
	}
}

func TestClassifyOutfit(t *testing.T) {
	tables := loadTables(t)

	cases := map[string]OutfitClass{
		"abrigo":       OutfitColdWeather,
		"chaqueta":     OutfitWarmWeather,
		"camiseta":     OutfitHotWeather,
		"paraguas":     OutfitRain,
		"chubasquero":  OutfitRain,
		"gafas de sol": OutfitSun,
		"esmoquin":     OutfitUnknown,
	}
	for outfit, want := range cases {
		if got := tables.ClassifyOutfit(outfit); got != want {
			t.Errorf("ClassifyOutfit(%q) = %v, expected %v", outfit, got, want)
		}
	}
}

func TestConditionField(t *testing.T) {
	tables := loadTables(t)

	if field, ok := tables.ConditionField("rain"); !ok || field != "chanceofrain" {
		t.Fatalf("expected chanceofrain, got %q ok=%v", field, ok)
	}
	if field, ok := tables.ConditionField("clouds"); !ok || field != "chanceofovercast" {
		t.Fatalf("expected clouds to alias overcast, got %q ok=%v", field, ok)
	}
	if _, ok := tables.ConditionField("meteorites"); ok {
		t.Fatal("expected unknown condition to have no field")
	}
}

func TestIsUnsupported(t *testing.T) {
	tables := loadTables(t)

	if !tables.IsUnsupported("hurricane") {
		t.Error("expected hurricane to be unsupported")
	}
	if tables.IsUnsupported("rain") {
		t.Error("expected rain to be supported")
	}
}

func TestConditionPhrasePassthrough(t *testing.T) {
	tables := loadTables(t)

	if got := tables.ConditionPhrase("rain"); got != "llueva" {
		t.Fatalf("expected llueva, got %q", got)
	}
	if got := tables.ConditionPhrase("aurora"); got != "aurora" {
		t.Fatalf("expected unknown phrase to pass through, got %q", got)
	}
}

func TestPatchConditionText(t *testing.T) {
	tables := loadTables(t)

	if got := tables.PatchConditionText("parcialmente nublado"); got != "cielo parcialmente nublado" {
		t.Fatalf("unexpected patch: %q", got)
	}
	if got := tables.PatchConditionText("despejado"); got != "despejado" {
		t.Fatalf("expected unpatched label to pass through, got %q", got)
	}
}
