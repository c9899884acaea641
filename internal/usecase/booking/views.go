package booking

// Read models shared by every backend. JSON names follow the remote wire contract.

type DateInfo struct {
	Date           string `json:"date"`
	DayOfWeek      string `json:"day_of_week"`
	DisplayDate    string `json:"display_date"`
	DayOfWeekShort string `json:"day_of_week_short"`
	Timestamp      int64  `json:"timestamp"`
}

type AvailableDates struct {
	Dates   []DateInfo `json:"available_dates"`
	Message string     `json:"message"`
	Count   int        `json:"count"`
}

type FreeSlots struct {
	Times          []string `json:"times"`
	QuotaRemaining int      `json:"quota"`
	QuotaTotal     int      `json:"quota_total"`
	QuotaUsed      int      `json:"quota_used"`
	Message        string   `json:"message"`
}

type ExistingCheck struct {
	Exists           bool   `json:"exists"`
	ConfirmationCode string `json:"ticket,omitempty"`
	Time             string `json:"time,omitempty"`
	Category         string `json:"blood_group,omitempty"`
	Weekday          string `json:"day,omitempty"`
	Date             string `json:"date,omitempty"`
}

type Registration struct {
	ConfirmationCode string `json:"ticket"`
	Weekday          string `json:"day"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Category         string `json:"blood_group"`
	QuotaRemaining   int    `json:"quota_remaining"`
	QuotaTotal       int    `json:"quota_total"`
	QuotaUsed        int    `json:"quota_used"`
	RegisteredAt     string `json:"registration_date"`
}

type Cancellation struct {
	Message          string `json:"message"`
	ConfirmationCode string `json:"ticket"`
	Weekday          string `json:"day"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Category         string `json:"blood_group"`
}

type BookingItem struct {
	Date             string `json:"date"`
	Weekday          string `json:"day"`
	ConfirmationCode string `json:"ticket"`
	Time             string `json:"time"`
	Category         string `json:"blood_group"`
}

type UserBookings struct {
	Bookings []BookingItem `json:"bookings"`
	Count    int           `json:"count"`
}

type DayQuota struct {
	Total     int            `json:"total"`
	Used      int            `json:"used"`
	Remaining int            `json:"remaining"`
	Quotas    map[string]int `json:"quotas"`
}

type QuotaSummary struct {
	TotalQuota int                 `json:"totalQuota"`
	TotalUsed  int                 `json:"totalUsed"`
	Remaining  int                 `json:"remaining"`
	ByDay      map[string]DayQuota `json:"byDay"`
}

type Quotas struct {
	Quotas  QuotaSummary `json:"quotas"`
	Message string       `json:"message"`
}

type Stats struct {
	TotalBookings       int            `json:"total_bookings"`
	TotalUsers          int            `json:"total_users"`
	DayStats            map[string]int `json:"day_stats"`
	CategoryStats       map[string]int `json:"blood_group_stats"`
	MostPopularDay      string         `json:"most_popular_day"`
	MostPopularCategory string         `json:"most_popular_blood_group"`
	QuotaStats          QuotaSummary   `json:"quota_stats"`
}
