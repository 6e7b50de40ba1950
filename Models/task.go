package Models

import (
	"gorm.io/gorm"
)

// Task is a to-do item owned by a user, with at most one uploaded attachment.
type Task struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Username        string `json:"username" gorm:"size:255;index"`
	TaskName        string `json:"task_name" gorm:"size:255"`
	TaskDescription string `json:"task_description" gorm:"type:text"`
	Date            string `json:"date" gorm:"size:64"`
	AttachmentPath  string `json:"attachment_path"`
}

func CreateTask(db *gorm.DB, task *Task) error {
	if db == nil {
		return ErrNotConnected
	}
	return db.Create(task).Error
}

// TasksByUsername returns the user's tasks ordered by date descending.
// An unknown username yields an empty slice, not an error.
func TasksByUsername(db *gorm.DB, username string) ([]Task, error) {
	if db == nil {
		return nil, ErrNotConnected
	}
	tasks := []Task{}
	err := db.Where("username = ?", username).Order("date DESC").Find(&tasks).Error
	return tasks, err
}

// UpdateTask overwrites the data fields of the task matching id. The stored
// attachment path is touched only when replaceAttachment is set. Matching
// zero rows is not an error.
func UpdateTask(db *gorm.DB, id string, task *Task, replaceAttachment bool) error {
	if db == nil {
		return ErrNotConnected
	}
	updates := map[string]interface{}{
		"task_name":        task.TaskName,
		"task_description": task.TaskDescription,
		"date":             task.Date,
	}
	if replaceAttachment {
		updates["attachment_path"] = task.AttachmentPath
	}
	return db.Model(&Task{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteTask removes the task matching id. Matching zero rows is not an error.
func DeleteTask(db *gorm.DB, id string) error {
	if db == nil {
		return ErrNotConnected
	}
	return db.Where("id = ?", id).Delete(&Task{}).Error
}
