package memcached

const (
	taskListKeyPrefix = "task-list-key_"
	taskKeyPrefix     = "task-key_"
)

func taskListKey(listID string) string {
	return taskListKeyPrefix + listID
}

func taskKey(listID, taskID string) string {
	return taskKeyPrefix + listID + "_" + taskID
}
