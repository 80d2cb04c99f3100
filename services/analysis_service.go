package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Alexeya-png/fitness-tracker/config"
	"github.com/Alexeya-png/fitness-tracker/models"
	"github.com/Alexeya-png/fitness-tracker/utils"

	"go.uber.org/zap"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

// AnalysisService relays a free-text food description to the completion API
// and turns the report into macro numbers. The upstream is best-effort: any
// fault yields a clearly marked synthetic report instead of an error, so the
// extractor always has input to parse.
type AnalysisService struct {
	apiKey string
	model  string
	client *http.Client
	log    *zap.Logger
}

func NewAnalysisService(log *zap.Logger) *AnalysisService {
	if log == nil {
		log = zap.NewNop()
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &AnalysisService{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func analysisPrompt(description, mealSlot string) string {
	if mealSlot == "" {
		mealSlot = "Не вказано"
	}
	return fmt.Sprintf(`Проаналізуй харчову цінність наступної їжі та обов'язково врахуй вагу, вказану у запиті користувача (наприклад: 1 кг, 500 г, 250 г тощо).
Якщо вага не вказана — рахуй для 100 г.
%s

Це прийом їжі: %s

Надай точну інформацію про:
1. Калорії (ккал)
2. Білки (г)
3. Жири (г)
4. Вуглеводи (г)

Форматуй відповідь ТІЛЬКИ так:
Калорії: X ккал
Білки: X г
Жири: X г
Вуглеводи: X г

X — числове значення для зазначеної ваги продукту. Не додавай жодних пояснень або назв.`, description, mealSlot)
}

func fallbackReport(description string) string {
	return fmt.Sprintf("Аналіз для %s:\nКалорії: 350 ккал\nБілки: 25 г\nЖири: 12 г\nВуглеводи: 35 г\n(Тестові дані)", description)
}

// Estimate returns the nutrient report for the description. The second
// return value is true when the report is the synthetic fallback.
func (s *AnalysisService) Estimate(description, mealSlot string) (string, bool) {
	report, err := s.complete(description, mealSlot)
	if err != nil {
		s.log.Warn("completion API unavailable, serving fallback report", zap.Error(err))
		return fallbackReport(description), true
	}
	return report, false
}

func (s *AnalysisService) complete(description, mealSlot string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	payload := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{{
			"role":    "user",
			"content": analysisPrompt(description, mealSlot),
		}},
		"max_tokens":  150,
		"temperature": 0.3,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	req, err := http.NewRequest("POST", completionsURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error %d: %s", resp.StatusCode, string(body))
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse completion JSON: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion response has no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

// Analyze runs the estimate, extracts macros from the report and saves the
// whole thing to the user's analysis history.
func (s *AnalysisService) Analyze(userID uint, description, mealSlot string) (*models.FoodAnalysis, error) {
	report, fallback := s.Estimate(description, mealSlot)
	macros := utils.ExtractNutrition(report)

	fa := &models.FoodAnalysis{
		UserID:      userID,
		Description: description,
		MealSlot:    mealSlot,
		Result:      report,
		Calories:    macros.Calories,
		Proteins:    macros.Proteins,
		Fats:        macros.Fats,
		Carbs:       macros.Carbs,
		Fallback:    fallback,
	}
	if err := config.DB.Create(fa).Error; err != nil {
		return nil, err
	}
	return fa, nil
}

// ListAnalyses returns the user's analysis history, newest first.
func (s *AnalysisService) ListAnalyses(userID uint, limit int) ([]models.FoodAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []models.FoodAnalysis
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
