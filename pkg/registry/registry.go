// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

func SaveRegistry(path string, reg *ActivityRegistry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Validate checks structural invariants: unique ids and task types, and a
// non-empty id/taskType/category on every activity.
func (r *ActivityRegistry) Validate() error {
	seenIDs := map[string]bool{}
	seenTasks := map[string]bool{}
	for i := range r.Activities {
		a := &r.Activities[i]
		if a.ID == "" || a.TaskType == "" || a.Category == "" {
			return fmt.Errorf("activity %d: id, taskType and category are required", i)
		}
		if seenIDs[a.ID] {
			return fmt.Errorf("duplicate activity id %q", a.ID)
		}
		if seenTasks[a.TaskType] {
			return fmt.Errorf("duplicate task type %q", a.TaskType)
		}
		seenIDs[a.ID] = true
		seenTasks[a.TaskType] = true
	}
	return nil
}

// ByTaskType returns the activity registered for a Zeebe task type.
func (r *ActivityRegistry) ByTaskType(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}
