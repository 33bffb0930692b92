package model

// Faculty преподаватель из справочника
type Faculty struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PreferredDays string `json:"preferredDays,omitempty"`
}

// Section учебная группа (поток), для которой составляется расписание
type Section struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	StudentCount int    `json:"studentCount,omitempty"`
}

type Room struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
}

type TimeSlot struct {
	ID        int64  `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Period    string `json:"period,omitempty"`
}

// Catalog снимок справочных данных бэкенда.
// Заменяется целиком при каждой загрузке и дальше только читается.
// Ключ timeslots бэкенда совпадает с timeSlots без учёта регистра.
type Catalog struct {
	Faculty   []Faculty  `json:"faculty"`
	Sections  []Section  `json:"sections"`
	Rooms     []Room     `json:"rooms"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}
