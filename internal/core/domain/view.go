package domain

import "fmt"

type View int

const (
	ViewHome View = iota
	ViewCreate
	ViewPoll
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewCreate:
		return "create"
	case ViewPoll:
		return "poll"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}
