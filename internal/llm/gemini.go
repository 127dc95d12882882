package llm

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"todoist-helper/internal/models"
)

// GeminiClient представляет клиент Google Generative Language API
type GeminiClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый Gemini клиент.
// Пустой ключ допустим: клиент тогда всегда отвечает "недоступно".
func NewClient(apiKey string) Client {
	return &GeminiClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout * time.Second,
		},
		baseURL: GeminiEndpoint,
	}
}

// GenerateReport отправляет промпт модели и возвращает текст отчёта
// с заголовком. Любой сбой превращается в («», false) и запись в лог.
func (c *GeminiClient) GenerateReport(prompt string, kind models.ReportKind) (string, bool) {
	// Проверка ключа до любого сетевого вызова
	if c.apiKey == "" {
		log.Println(LogAPIKeyMissing)
		return "", false
	}

	text, ok := c.callGemini(prompt)
	if !ok {
		return "", false
	}

	return reportHeader(kind, time.Now()) + "\n\n" + Sanitize(text), true
}

// callGemini выполняет единственный запрос генерации и извлекает
// текст первого кандидата
func (c *GeminiClient) callGemini(prompt string) (string, bool) {
	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     DefaultTemperature,
			"maxOutputTokens": DefaultMaxTokens,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		log.Printf(LogMarshalError, err)
		return "", false
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf(LogRequestError, err)
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf(LogRequestError, err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf(LogGeminiError, resp.Status, string(body))
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf(LogReadError, err)
		return "", false
	}

	var geminiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &geminiResponse); err != nil {
		log.Printf(LogParseError, err)
		return "", false
	}

	if len(geminiResponse.Candidates) == 0 || len(geminiResponse.Candidates[0].Content.Parts) == 0 {
		log.Println(LogEmptyResponse)
		return "", false
	}

	return geminiResponse.Candidates[0].Content.Parts[0].Text, true
}

// Sanitize вычищает символы markdown-разметки из ответа модели,
// остальные символы не трогает
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(MarkdownChars, r) {
			return -1
		}
		return r
	}, text)
}

// reportHeader строит заголовок отчёта по его типу
func reportHeader(kind models.ReportKind, now time.Time) string {
	if kind == models.ReportMonthly {
		return MonthlyHeader(now)
	}
	return DailyHeader(now)
}
