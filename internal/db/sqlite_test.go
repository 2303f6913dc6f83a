package db

import (
	"path/filepath"
	"testing"

	"github.com/terraincognita07/fleemy/internal/models"
)

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "bootstrap-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	var applied int64
	if err := database.Table("schema_migrations").Count(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected at least one applied migration")
	}

	user := models.User{
		UID:          "uid-bootstrap",
		Name:         "Bootstrap",
		Email:        "bootstrap@example.com",
		PasswordHash: "x",
		HourlyRate:   50,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("insert into users: %v", err)
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "reopen-test.db")
	first, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	sqlDB, err := first.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close first connection: %v", err)
	}

	second, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}

	var applied int64
	if err := second.Table("schema_migrations").Count(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected migrations to stay recorded")
	}
}

func TestRepositoriesRoundTrip(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "repo-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repos := NewRepositories(database)

	event := models.PlanningEvent{
		EventID:     "evt-1",
		UID:         "uid-1",
		Year:        2025,
		Week:        10,
		Description: "Work",
		Day:         "monday",
		StartTime:   "09:00",
		EndTime:     "12:00",
		Status:      models.StatusPaid,
	}
	if err := repos.Events.Create(&event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	listed, err := repos.Events.ListByOwnersWeek([]string{"uid-1"}, 2025, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(listed) != 1 || listed[0].EventID != "evt-1" {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	empty, err := repos.Events.ListByOwnersWeek(nil, 2025, 10)
	if err != nil {
		t.Fatalf("list with empty scope: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty scope to list nothing, got %d", len(empty))
	}

	task := models.WeeklyTask{
		TaskID: "task-1",
		UID:    "uid-1",
		Year:   2025,
		Week:   10,
		Name:   "Support",
		Price:  30,
		TimeSlots: []models.TimeSlot{
			{Day: "tuesday", Start: "10:00", End: "12:00"},
		},
	}
	if err := repos.Tasks.Create(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	stored, found, err := repos.Tasks.FindByTaskID("task-1", "uid-1")
	if err != nil || !found {
		t.Fatalf("find task: found=%v err=%v", found, err)
	}
	if len(stored.TimeSlots) != 1 || stored.TimeSlots[0].Day != "tuesday" {
		t.Fatalf("time slots did not survive the round trip: %+v", stored.TimeSlots)
	}
}
