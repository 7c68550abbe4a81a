package domain

// Draft is the poll being composed in the create view.
type Draft struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func NewDraft() Draft {
	return Draft{Options: make([]string, MinOptions)}
}

func (d *Draft) AddOption() bool {
	if len(d.Options) >= MaxOptions {
		return false
	}
	d.Options = append(d.Options, "")
	return true
}

func (d *Draft) RemoveOption(index int) bool {
	if len(d.Options) <= MinOptions || index < 0 || index >= len(d.Options) {
		return false
	}
	d.Options = append(d.Options[:index:index], d.Options[index+1:]...)
	return true
}

func (d *Draft) UpdateOption(index int, text string) bool {
	if index < 0 || index >= len(d.Options) {
		return false
	}
	d.Options[index] = text
	return true
}

func (d Draft) Valid() bool {
	return ValidPoll(d.Question, d.Options)
}

func (d Draft) CanAddOption() bool    { return len(d.Options) < MaxOptions }
func (d Draft) CanRemoveOption() bool { return len(d.Options) > MinOptions }

func (d Draft) Clone() Draft {
	d.Options = append([]string(nil), d.Options...)
	return d
}
