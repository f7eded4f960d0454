package dashboard

import "fmt"

// Trigger names the input that caused an update cycle. It is carried on the
// event itself so the controller never has to infer it from changed values.
type Trigger int

const (
	TriggerInitial Trigger = iota
	TriggerBMIInput
	TriggerHover
	TriggerClick
	TriggerToggle
)

var triggerNames = map[Trigger]string{
	TriggerInitial:  "initial",
	TriggerBMIInput: "bmi_input",
	TriggerHover:    "hover",
	TriggerClick:    "click",
	TriggerToggle:   "toggle",
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// ParseTrigger is the inverse of String.
func ParseTrigger(name string) (Trigger, error) {
	for t, n := range triggerNames {
		if n == name {
			return t, nil
		}
	}
	return TriggerInitial, fmt.Errorf("unknown trigger %q", name)
}

func (t Trigger) MarshalText() ([]byte, error) {
	if _, ok := triggerNames[t]; !ok {
		return nil, fmt.Errorf("unknown trigger %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Trigger) UnmarshalText(text []byte) error {
	parsed, err := ParseTrigger(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
