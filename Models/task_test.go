package Models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Task{}))
	return db
}

func seedTask(t *testing.T, db *gorm.DB, username, name, date, attachment string) Task {
	t.Helper()
	task := Task{
		Username:        username,
		TaskName:        name,
		TaskDescription: name + " description",
		Date:            date,
		AttachmentPath:  attachment,
	}
	require.NoError(t, CreateTask(db, &task))
	return task
}

func TestCreateTask(t *testing.T) {
	db := setupTestDB(t)

	task := seedTask(t, db, "bob", "Write report", "2024-01-15", "uploads/1-report.pdf")

	assert.NotZero(t, task.ID)

	var stored Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.Equal(t, "bob", stored.Username)
	assert.Equal(t, "Write report", stored.TaskName)
	assert.Equal(t, "uploads/1-report.pdf", stored.AttachmentPath)
}

func TestTasksByUsername(t *testing.T) {
	db := setupTestDB(t)

	seedTask(t, db, "alice", "oldest", "2024-01-15", "uploads/1-a.pdf")
	seedTask(t, db, "alice", "newest", "2024-03-01", "uploads/2-b.pdf")
	seedTask(t, db, "alice", "middle", "2024-02-10", "uploads/3-c.pdf")
	seedTask(t, db, "bob", "other user", "2024-12-31", "uploads/4-d.pdf")

	tasks, err := TasksByUsername(db, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Date descending, bob's task excluded
	assert.Equal(t, "newest", tasks[0].TaskName)
	assert.Equal(t, "middle", tasks[1].TaskName)
	assert.Equal(t, "oldest", tasks[2].TaskName)
	for _, task := range tasks {
		assert.Equal(t, "alice", task.Username)
	}
}

func TestTasksByUsernameUnknownUserIsEmpty(t *testing.T) {
	db := setupTestDB(t)

	seedTask(t, db, "alice", "a task", "2024-01-15", "uploads/1-a.pdf")

	tasks, err := TasksByUsername(db, "nobody")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTaskPreservesAttachment(t *testing.T) {
	db := setupTestDB(t)

	task := seedTask(t, db, "alice", "before", "2024-01-15", "uploads/1-a.pdf")

	err := UpdateTask(db, fmt.Sprint(task.ID), &Task{
		TaskName:        "after",
		TaskDescription: "changed",
		Date:            "2024-02-01",
	}, false)
	require.NoError(t, err)

	var stored Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.Equal(t, "after", stored.TaskName)
	assert.Equal(t, "changed", stored.TaskDescription)
	assert.Equal(t, "2024-02-01", stored.Date)
	assert.Equal(t, "uploads/1-a.pdf", stored.AttachmentPath)
}

func TestUpdateTaskReplacesAttachment(t *testing.T) {
	db := setupTestDB(t)

	task := seedTask(t, db, "alice", "before", "2024-01-15", "uploads/1-a.pdf")

	err := UpdateTask(db, fmt.Sprint(task.ID), &Task{
		TaskName:        "after",
		TaskDescription: "changed",
		Date:            "2024-02-01",
		AttachmentPath:  "uploads/2-b.pdf",
	}, true)
	require.NoError(t, err)

	var stored Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.Equal(t, "after", stored.TaskName)
	assert.Equal(t, "uploads/2-b.pdf", stored.AttachmentPath)
}

func TestUpdateTaskUnknownIDSucceeds(t *testing.T) {
	db := setupTestDB(t)

	err := UpdateTask(db, "9999", &Task{
		TaskName:        "ghost",
		TaskDescription: "ghost",
		Date:            "2024-01-01",
	}, false)
	assert.NoError(t, err)
}

func TestDeleteTask(t *testing.T) {
	db := setupTestDB(t)

	task := seedTask(t, db, "alice", "doomed", "2024-01-15", "uploads/1-a.pdf")

	require.NoError(t, DeleteTask(db, fmt.Sprint(task.ID)))

	var count int64
	require.NoError(t, db.Model(&Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteTaskUnknownIDSucceeds(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, DeleteTask(db, "9999"))
}

func TestNilDatabaseIsReported(t *testing.T) {
	assert.ErrorIs(t, CreateTask(nil, &Task{}), ErrNotConnected)
	assert.ErrorIs(t, UpdateTask(nil, "1", &Task{}, false), ErrNotConnected)
	assert.ErrorIs(t, DeleteTask(nil, "1"), ErrNotConnected)
	assert.ErrorIs(t, Ping(nil), ErrNotConnected)

	_, err := TasksByUsername(nil, "alice")
	assert.ErrorIs(t, err, ErrNotConnected)
}
