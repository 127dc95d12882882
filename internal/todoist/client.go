package todoist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"todoist-helper/internal/models"
)

// Client представляет клиент для работы с Todoist API.
// Активные задачи и проекты идут через REST API, выполненные — через Sync API.
type Client struct {
	token      string
	httpClient *http.Client
	restURL    string
	syncURL    string
}

// NewClient создает новый Todoist клиент с персональным токеном пользователя
func NewClient(token string) *Client {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout * time.Second,
		},
		restURL: RestBaseURL,
		syncURL: SyncBaseURL,
	}
}

// VerifyToken проверяет токен дешевым запросом списка проектов
func (c *Client) VerifyToken() bool {
	_, err := c.GetProjects()
	return err == nil
}

// GetProjects возвращает отображение id проекта в его название
func (c *Client) GetProjects() (map[string]string, error) {
	body, err := c.get(c.restURL + "/projects")
	if err != nil {
		return nil, err
	}

	var projects []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects: %w", err)
	}

	result := make(map[string]string, len(projects))
	for _, p := range projects {
		result[p.ID] = p.Name
	}
	return result, nil
}

// GetActiveTasks возвращает активные задачи с подставленными названиями проектов
func (c *Client) GetActiveTasks() ([]models.TaskInfo, error) {
	body, err := c.get(c.restURL + "/tasks")
	if err != nil {
		return nil, err
	}

	var tasks []struct {
		Content   string `json:"content"`
		ProjectID string `json:"project_id"`
		Due       *struct {
			String string `json:"string"`
		} `json:"due"`
	}
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}

	projects, err := c.GetProjects()
	if err != nil {
		return nil, err
	}

	result := make([]models.TaskInfo, 0, len(tasks))
	for _, t := range tasks {
		info := models.TaskInfo{
			Content:     t.Content,
			ProjectName: projectName(projects, t.ProjectID),
		}
		if t.Due != nil {
			info.DueDate = t.Due.String
		}
		result = append(result, info)
	}
	return result, nil
}

// GetCompletedSince возвращает задачи, выполненные после указанного момента.
// Ошибка Sync API логируется и превращается в пустой список.
func (c *Client) GetCompletedSince(since time.Time) ([]models.TaskInfo, error) {
	endpoint := c.syncURL + "/completed/get_all?since=" + url.QueryEscape(since.Format("2006-01-02T15:04:05"))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		log.Printf(LogSyncAPIError, resp.Status, string(errBody))
		return []models.TaskInfo{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var payload struct {
		Items []struct {
			Content     string `json:"content"`
			ProjectID   string `json:"project_id"`
			CompletedAt string `json:"completed_at"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse completed tasks: %w", err)
	}

	projects, err := c.GetProjects()
	if err != nil {
		return nil, err
	}

	result := make([]models.TaskInfo, 0, len(payload.Items))
	for _, item := range payload.Items {
		info := models.TaskInfo{
			Content:     item.Content,
			ProjectName: projectName(projects, item.ProjectID),
		}
		if completedAt, err := time.Parse(time.RFC3339, item.CompletedAt); err == nil {
			info.CompletedAt = &completedAt
		}
		result = append(result, info)
	}
	return result, nil
}

// GetTodayCompleted возвращает задачи, выполненные с начала дня
func (c *Client) GetTodayCompleted() ([]models.TaskInfo, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return c.GetCompletedSince(startOfDay)
}

// GetWeekCompleted возвращает задачи, выполненные за последние 7 дней
func (c *Client) GetWeekCompleted() ([]models.TaskInfo, error) {
	return c.GetCompletedSince(time.Now().AddDate(0, 0, -7))
}

// GetMonthCompleted возвращает задачи, выполненные за последние 30 дней
func (c *Client) GetMonthCompleted() ([]models.TaskInfo, error) {
	return c.GetCompletedSince(time.Now().AddDate(0, 0, -30))
}

// AddTask создает задачу; при пустом projectID задача попадает в Inbox
func (c *Client) AddTask(content, projectID string) error {
	payload := map[string]string{"content": content}
	if projectID != "" {
		payload["project_id"] = projectID
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.restURL+"/tasks", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("todoist API error: %s - %s", resp.Status, string(body))
	}
	return nil
}

// get выполняет авторизованный GET запрос к REST API
func (c *Client) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("todoist API error: %s - %s", resp.Status, string(body))
	}

	return io.ReadAll(resp.Body)
}

// projectName возвращает название проекта или Inbox, если проект неизвестен
func projectName(projects map[string]string, projectID string) string {
	if name, ok := projects[projectID]; ok {
		return name
	}
	return DefaultProjectName
}
