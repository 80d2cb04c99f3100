package utils

import (
	"regexp"
	"strconv"
)

// The analysis reports are requested in a fixed Ukrainian format:
//
//	Калорії: 300 ккал
//	Білки: 25 г
//	...
//
// The model is not contractually bound to that phrasing, so extraction is
// lossy and best-effort: both ":" and "-"/"–" separators are accepted and any
// label that cannot be found yields 0 rather than an error.
var (
	caloriesRe = regexp.MustCompile(`(?i)калорі[йї]\s*[-–:]\s*(\d+)`)
	proteinsRe = regexp.MustCompile(`(?i)білк[иі]\s*[-–:]\s*(\d+)`)
	fatsRe     = regexp.MustCompile(`(?i)жир[иі]\s*[-–:]\s*(\d+)`)
	carbsRe    = regexp.MustCompile(`(?i)вуглевод[иі]\s*[-–:]\s*(\d+)`)
)

// ExtractNutrition pulls the four macro values out of a free-form analysis
// report. Missing labels come back as 0.
func ExtractNutrition(text string) NutritionTargets {
	return NutritionTargets{
		Calories: firstInt(caloriesRe, text),
		Proteins: firstInt(proteinsRe, text),
		Fats:     firstInt(fatsRe, text),
		Carbs:    firstInt(carbsRe, text),
	}
}

func firstInt(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
