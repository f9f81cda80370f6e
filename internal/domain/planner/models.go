package planner

import "encoding/json"

type LeaveType string

const (
	LeaveAnnual    LeaveType = "Annual"
	LeaveEmergency LeaveType = "Emergency"
	LeaveUnpaid    LeaveType = "Unpaid"
	LeaveMedical   LeaveType = "Medical"
	LeaveOthers    LeaveType = "Others"
)

// LeaveTypes returns every leave type in display order.
func LeaveTypes() []LeaveType {
	return []LeaveType{LeaveAnnual, LeaveEmergency, LeaveUnpaid, LeaveMedical, LeaveOthers}
}

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveAnnual, LeaveEmergency, LeaveUnpaid, LeaveMedical, LeaveOthers:
		return true
	}
	return false
}

// LeaveEntry is a recorded day off. At most one entry exists per date;
// the upsert operations enforce that.
type LeaveEntry struct {
	ID   string    `json:"id"`
	Date string    `json:"date"`
	Type LeaveType `json:"type"`
	Note string    `json:"note,omitempty"`
}

// CustomHoliday is a user-defined non-working day.
type CustomHoliday struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// Holiday is the resolved read-only view over public and custom
// holidays. Empty States means the holiday applies nationwide.
type Holiday struct {
	Date      string   `json:"date"`
	Name      string   `json:"name"`
	IsFederal bool     `json:"isFederal"`
	States    []string `json:"states,omitempty"`
}

// UserData is the aggregate persisted document. It round-trips to and
// from storage atomically as one JSON object.
type UserData struct {
	Leaves         []LeaveEntry    `json:"leaves"`
	CustomHolidays []CustomHoliday `json:"customHolidays"`
	Entitlement    int             `json:"entitlement"`
	Theme          string          `json:"theme"`
	IsDarkMode     bool            `json:"isDarkMode"`
	// PreventPublicHolidayLeave is persisted for compatibility but is
	// not read by any computation.
	PreventPublicHolidayLeave bool  `json:"preventPublicHolidayLeave"`
	LastUpdated               int64 `json:"lastUpdated,omitempty"`
}

const (
	DefaultEntitlement = 14
	DefaultTheme       = "ocean"
)

func DefaultUserData() UserData {
	return UserData{
		Leaves:                    []LeaveEntry{},
		CustomHolidays:            []CustomHoliday{},
		Entitlement:               DefaultEntitlement,
		Theme:                     DefaultTheme,
		PreventPublicHolidayLeave: true,
	}
}

// DecodeUserData hydrates a persisted payload over the defaults.
// A missing or unparsable payload yields the default document; fields
// absent from the payload keep their default values.
func DecodeUserData(raw []byte) UserData {
	data := DefaultUserData()
	if len(raw) == 0 {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return DefaultUserData()
	}
	return normalize(data)
}

func normalize(data UserData) UserData {
	if data.Leaves == nil {
		data.Leaves = []LeaveEntry{}
	}
	if data.CustomHolidays == nil {
		data.CustomHolidays = []CustomHoliday{}
	}
	if data.Theme == "" {
		data.Theme = DefaultTheme
	}
	return data
}
