package repository

import (
	"strings"
	"testing"
	"time"

	"myevent-api/core/database"
	"myevent-api/modules/event/entity"

	"github.com/google/uuid"
)

func TestFilterConditions(t *testing.T) {
	cat := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	sql, args, err := filterConditions(entity.EventFilter{
		Visibility: entity.VisibilityPublic,
		Status:     entity.EventStatusActive,
		CategoryID: &cat,
		District:   "Barranco",
		Search:     "jazz",
		From:       &from,
	}).ToSql()
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"e.visibility = ?",
		"e.status = ?",
		"e.category_id = ?",
		"e.district ILIKE ?",
		"e.title ILIKE ?",
		"e.short_description ILIKE ?",
		"e.date >= ?",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("sql %q missing %q", sql, want)
		}
	}
	if len(args) != 8 {
		t.Fatalf("args = %v", args)
	}
	if args[4] != "%jazz%" {
		t.Errorf("search arg = %v", args[4])
	}
}

func TestFilterConditionsEmpty(t *testing.T) {
	sql, args, err := filterConditions(entity.EventFilter{}).ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if sql != "(1=1)" || len(args) != 0 {
		t.Errorf("empty filter = %q %v", sql, args)
	}
}

func TestListSelectUsesDollarPlaceholders(t *testing.T) {
	r := NewEventRepository(database.Database{})

	sql, _, err := r.listSelect().Where(filterConditions(entity.EventFilter{Status: entity.EventStatusActive})).ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sql, "e.status = $1") {
		t.Errorf("sql %q should use $1 placeholders", sql)
	}
	if !strings.Contains(sql, "LEFT JOIN participations o ON o.event_id = e.id AND o.role = 'organizador'") {
		t.Errorf("sql %q missing organizer join", sql)
	}
}
