package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"todoist-helper/internal/models"
)

func sampleTasks() []models.TaskInfo {
	return []models.TaskInfo{
		{Content: "Fix bug", ProjectName: "Alpha"},
		{Content: "Write docs", ProjectName: "Alpha"},
		{Content: "Deploy", ProjectName: "Beta"},
	}
}

func TestFormatCompletedGroupsByProject(t *testing.T) {
	got := FormatCompleted(sampleTasks(), models.PeriodToday, "")

	if !strings.Contains(got, "Выполнено за сегодня: 3") {
		t.Fatalf("expected header with total 3, got:\n%s", got)
	}
	if !strings.Contains(got, "Alpha (2):") {
		t.Fatalf("expected Alpha block with 2 tasks, got:\n%s", got)
	}
	if !strings.Contains(got, "Beta (1):") {
		t.Fatalf("expected Beta block with 1 task, got:\n%s", got)
	}

	alpha := strings.Index(got, "Alpha")
	beta := strings.Index(got, "Beta")
	if alpha > beta {
		t.Fatalf("expected Alpha before Beta, got:\n%s", got)
	}

	fix := strings.Index(got, "Fix bug")
	docs := strings.Index(got, "Write docs")
	if fix > docs {
		t.Fatalf("expected fetch order preserved within group, got:\n%s", got)
	}
}

func TestFormatCompletedProjectOrderIndependentOfInput(t *testing.T) {
	tasks := []models.TaskInfo{
		{Content: "A", ProjectName: "proj2"},
		{Content: "B", ProjectName: "proj1"},
		{Content: "C", ProjectName: "proj2"},
	}
	got := FormatCompleted(tasks, models.PeriodWeek, "")

	if strings.Index(got, "proj1") > strings.Index(got, "proj2") {
		t.Fatalf("expected proj1 before proj2, got:\n%s", got)
	}
	if strings.Index(got, "- A") > strings.Index(got, "- C") {
		t.Fatalf("expected A before C inside proj2, got:\n%s", got)
	}
}

func TestFormatIdempotent(t *testing.T) {
	tasks := sampleTasks()
	first := FormatPending(tasks, "")
	second := FormatPending(tasks, "")
	if first != second {
		t.Fatalf("formatting is not idempotent:\n%q\nvs\n%q", first, second)
	}
}

func TestFormatPendingDueSuffix(t *testing.T) {
	tasks := []models.TaskInfo{
		{Content: "Call mom", ProjectName: "Home", DueDate: "завтра"},
		{Content: "Pay rent", ProjectName: "Home"},
	}
	got := FormatPending(tasks, "")

	if !strings.Contains(got, "Call mom [срок: завтра]") {
		t.Fatalf("expected due-date suffix, got:\n%s", got)
	}
	if strings.Contains(got, "Pay rent [срок:") {
		t.Fatalf("unexpected due suffix on task without due date:\n%s", got)
	}
}

func TestFormatCompletedHasNoDueSuffix(t *testing.T) {
	tasks := []models.TaskInfo{
		{Content: "Ship it", ProjectName: "Work", DueDate: "вчера"},
	}
	got := FormatCompleted(tasks, models.PeriodMonth, "")
	if strings.Contains(got, "[срок:") {
		t.Fatalf("completed report must not contain due suffixes:\n%s", got)
	}
}

func TestFilterByProjectCaseInsensitive(t *testing.T) {
	tasks := []models.TaskInfo{
		{Content: "Fix bug", ProjectName: "Work"},
		{Content: "Buy milk", ProjectName: "Home"},
	}
	got := FilterByProject(tasks, "work")
	if len(got) != 1 || got[0].Content != "Fix bug" {
		t.Fatalf("expected only Work task, got %+v", got)
	}
}

func TestFilterByProjectTruncatedPrefix(t *testing.T) {
	long := strings.Repeat("a", 40)
	other := strings.Repeat("a", 32) + "-second"
	tasks := []models.TaskInfo{
		{Content: "one", ProjectName: long},
		{Content: "two", ProjectName: other},
		{Content: "three", ProjectName: "Beta"},
	}

	// Фильтр, прошедший через callback, урезан до 32 байт и
	// сопоставляется по префиксу: оба длинных проекта совпадают
	got := FilterByProject(tasks, TruncateProject(long))
	if len(got) != 2 {
		t.Fatalf("expected prefix collision of 2 projects, got %d: %+v", len(got), got)
	}
}

func TestFilterNeverDropsSilently(t *testing.T) {
	tasks := sampleTasks()
	got := FilterByProject(tasks, "")
	if len(got) != len(tasks) {
		t.Fatalf("empty filter must keep all tasks, got %d of %d", len(got), len(tasks))
	}
}

func TestEmptyInputMessages(t *testing.T) {
	if got := FormatPending(nil, ""); got != MsgNoPendingTasks {
		t.Fatalf("expected %q, got %q", MsgNoPendingTasks, got)
	}
	if got := FormatPending(sampleTasks(), "Gamma"); got != "Нет активных задач в проекте «Gamma»." {
		t.Fatalf("unexpected filtered empty message: %q", got)
	}
	if got := FormatCompleted(nil, models.PeriodToday, ""); got != "Нет выполненных задач за сегодня." {
		t.Fatalf("unexpected empty message: %q", got)
	}
	if got := FormatCompleted(nil, models.PeriodMonth, "Gamma"); got != "Нет выполненных задач за этот месяц в проекте «Gamma»." {
		t.Fatalf("unexpected filtered empty message: %q", got)
	}
}

func TestExcludeProjects(t *testing.T) {
	tasks := []models.TaskInfo{
		{Content: "one", ProjectName: "Work"},
		{Content: "two", ProjectName: "Личное"},
		{Content: "three", ProjectName: "Home"},
	}
	got := ExcludeProjects(tasks, []string{"личное", " home "})
	if len(got) != 1 || got[0].ProjectName != "Work" {
		t.Fatalf("expected only Work task after exclusion, got %+v", got)
	}

	same := ExcludeProjects(tasks, nil)
	if len(same) != 3 {
		t.Fatalf("empty exclusion list must keep all tasks, got %d", len(same))
	}
}

func TestTruncateProject(t *testing.T) {
	if got := TruncateProject("short"); got != "short" {
		t.Fatalf("short name must be kept, got %q", got)
	}

	long := strings.Repeat("x", 50)
	if got := TruncateProject(long); len(got) != ProjectKeyMaxLen {
		t.Fatalf("expected %d bytes, got %d", ProjectKeyMaxLen, len(got))
	}

	// Срез не должен ломать UTF-8: байт 32 попадает в середину руны
	cyrillic := "a" + strings.Repeat("д", 16)
	got := TruncateProject(cyrillic)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if len(got) > ProjectKeyMaxLen {
		t.Fatalf("expected at most %d bytes, got %d", ProjectKeyMaxLen, len(got))
	}
}
