package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateNutrition_Male(t *testing.T) {
	// Mifflin-St Jeor: 10*70 + 6.25*175 - 5*30 + 5 = 1648.75; sedentary ×1.2 = 1978.5
	got, err := CalculateNutrition(70, 175, 30, "male", 1.2)
	require.NoError(t, err)
	require.Equal(t, 1979, got.Calories)
	require.Equal(t, 148, got.Proteins) // 1978.5*0.3/4
	require.Equal(t, 66, got.Fats)      // 1978.5*0.3/9
	require.Equal(t, 198, got.Carbs)    // 1978.5*0.4/4
}

func TestCalculateNutrition_Female(t *testing.T) {
	// same metrics, female constant −161: 1482.75; ×1.2 = 1779.3
	got, err := CalculateNutrition(70, 175, 30, "female", 1.2)
	require.NoError(t, err)
	require.Equal(t, 1779, got.Calories)
}

func TestCalculateNutrition_ActivityScales(t *testing.T) {
	sedentary, err := CalculateNutrition(70, 175, 30, "male", 1.2)
	require.NoError(t, err)
	active, err := CalculateNutrition(70, 175, 30, "male", 1.9)
	require.NoError(t, err)
	require.Greater(t, active.Calories, sedentary.Calories)
}

func TestCalculateNutrition_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		sex      string
		activity float64
	}{
		{"zero weight", 0, 175, 30, "male", 1.2},
		{"negative height", 70, -175, 30, "male", 1.2},
		{"zero age", 70, 175, 0, "male", 1.2},
		{"NaN weight", math.NaN(), 175, 30, "male", 1.2},
		{"infinite height", 70, math.Inf(1), 30, "male", 1.2},
		{"implausible age", 70, 175, 200, "male", 1.2},
		{"unknown sex", 70, 175, 30, "other", 1.2},
		{"unknown activity factor", 70, 175, 30, "male", 1.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateNutrition(tc.weight, tc.height, tc.age, tc.sex, tc.activity)
			require.Error(t, err)
		})
	}
}

func TestCalculateNutrition_Deterministic(t *testing.T) {
	a, err := CalculateNutrition(82.5, 180, 27, "male", 1.55)
	require.NoError(t, err)
	b, err := CalculateNutrition(82.5, 180, 27, "male", 1.55)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	require.InDelta(t, 22.86, bmi, 0.01)
	require.Equal(t, "Normal weight", BMICategory(bmi))

	_, err = CalculateBMI(0, 70)
	require.Error(t, err)
}
