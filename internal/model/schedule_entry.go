package model

// ScheduleEntry — одна строка расписания занятий группы
type ScheduleEntry struct {
	ID       int64  `json:"id"`
	Group    string `json:"group"`
	Day      string `json:"day"`
	Time     string `json:"time"`
	Subject  string `json:"subject"`
	Location string `json:"location"`
}
