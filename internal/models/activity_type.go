package models

import (
	"encoding/json"
	"fmt"
)

// ActivityType classifies a training session. It is stored in the
// database as its integer code and rendered on the API as the
// upper-case name (RUNNING, CYCLING, ...).
type ActivityType int

const (
	ActivityRunning ActivityType = iota
	ActivityCycling
	ActivitySwimming
	ActivityWalking
)

var activityNames = map[ActivityType]string{
	ActivityRunning:  "RUNNING",
	ActivityCycling:  "CYCLING",
	ActivitySwimming: "SWIMMING",
	ActivityWalking:  "WALKING",
}

func (a ActivityType) String() string {
	if name, ok := activityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ACTIVITY(%d)", int(a))
}

// ParseActivityType resolves an upper-case activity name to its code.
func ParseActivityType(name string) (ActivityType, error) {
	for code, n := range activityNames {
		if n == name {
			return code, nil
		}
	}
	return 0, fmt.Errorf("unknown activity type %q", name)
}

func (a ActivityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *ActivityType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseActivityType(name)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
