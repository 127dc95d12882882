package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"todoist-helper/internal/models"
)

// PeriodPhrase возвращает словосочетание периода для заголовков и сообщений
func PeriodPhrase(period models.Period) string {
	switch period {
	case models.PeriodToday:
		return "сегодня"
	case models.PeriodWeek:
		return "эту неделю"
	case models.PeriodMonth:
		return "этот месяц"
	default:
		return string(period)
	}
}

// FormatPending строит отчёт по активным задачам: общее количество,
// проекты в лексикографическом порядке, внутри проекта задачи в порядке выборки,
// у задач со сроком добавляется суффикс.
func FormatPending(tasks []models.TaskInfo, projectFilter string) string {
	tasks = FilterByProject(tasks, projectFilter)

	if len(tasks) == 0 {
		if projectFilter != "" {
			return fmt.Sprintf(MsgNoPendingTasksProject, projectFilter)
		}
		return MsgNoPendingTasks
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf(FormatPendingHeader, len(tasks)))

	names, byProject := groupByProject(tasks)
	for _, name := range names {
		group := byProject[name]
		result.WriteString(fmt.Sprintf(FormatProjectHeader, name, len(group)))
		for _, task := range group {
			due := ""
			if task.DueDate != "" {
				due = fmt.Sprintf(FormatDueSuffix, task.DueDate)
			}
			result.WriteString(fmt.Sprintf(FormatTaskLine, task.Content, due))
		}
	}

	return result.String()
}

// FormatCompleted строит отчёт по выполненным задачам за период.
// Контракт группировки тот же, что и у FormatPending, но без сроков.
func FormatCompleted(tasks []models.TaskInfo, period models.Period, projectFilter string) string {
	tasks = FilterByProject(tasks, projectFilter)
	phrase := PeriodPhrase(period)

	if len(tasks) == 0 {
		if projectFilter != "" {
			return fmt.Sprintf(MsgNoCompletedTasksProject, phrase, projectFilter)
		}
		return fmt.Sprintf(MsgNoCompletedTasks, phrase)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf(FormatCompletedHeader, phrase, len(tasks)))

	names, byProject := groupByProject(tasks)
	for _, name := range names {
		group := byProject[name]
		result.WriteString(fmt.Sprintf(FormatProjectHeader, name, len(group)))
		for _, task := range group {
			result.WriteString(fmt.Sprintf(FormatTaskLine, task.Content, ""))
		}
	}

	return result.String()
}

// FilterByProject фильтрует задачи по названию проекта без учета регистра.
// Фильтр, урезанный до ProjectKeyMaxLen при упаковке в callback, сопоставляется
// по префиксу: проекты с общим префиксом при этом склеиваются.
func FilterByProject(tasks []models.TaskInfo, projectFilter string) []models.TaskInfo {
	if projectFilter == "" {
		return tasks
	}

	var result []models.TaskInfo
	for _, task := range tasks {
		if matchesProject(task.ProjectName, projectFilter) {
			result = append(result, task)
		}
	}
	return result
}

// ExcludeProjects убирает задачи из перечисленных проектов (без учета регистра).
// Используется перед AI-суммаризацией для личных проектов.
func ExcludeProjects(tasks []models.TaskInfo, excluded []string) []models.TaskInfo {
	if len(excluded) == 0 {
		return tasks
	}

	result := make([]models.TaskInfo, 0, len(tasks))
	for _, task := range tasks {
		skip := false
		for _, name := range excluded {
			if strings.EqualFold(task.ProjectName, strings.TrimSpace(name)) {
				skip = true
				break
			}
		}
		if !skip {
			result = append(result, task)
		}
	}
	return result
}

// TruncateProject урезает название проекта для callback payload.
// Срез выравнивается по границе руны, чтобы не ломать UTF-8.
func TruncateProject(name string) string {
	if len(name) <= ProjectKeyMaxLen {
		return name
	}

	cut := ProjectKeyMaxLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// matchesProject сравнивает название проекта с фильтром: точное совпадение
// без учета регистра, либо совпадение по префиксу, если длина фильтра
// на границе урезания (такой фильтр мог быть усечен в callback payload)
func matchesProject(projectName, filter string) bool {
	if strings.EqualFold(projectName, filter) {
		return true
	}
	if len(filter) > ProjectKeyMaxLen-utf8.UTFMax {
		return strings.HasPrefix(strings.ToLower(projectName), strings.ToLower(filter))
	}
	return false
}

// groupByProject разбивает задачи по проектам, сохраняя порядок выборки
// внутри группы, и возвращает отсортированный список названий
func groupByProject(tasks []models.TaskInfo) ([]string, map[string][]models.TaskInfo) {
	byProject := make(map[string][]models.TaskInfo)
	for _, task := range tasks {
		byProject[task.ProjectName] = append(byProject[task.ProjectName], task)
	}

	names := make([]string, 0, len(byProject))
	for name := range byProject {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, byProject
}
