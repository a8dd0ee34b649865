package attendance

type CheckRequest struct {
	EmpID string `json:"emp_id" binding:"required"`
}

type CheckResponse struct {
	Message  string `json:"message"`
	IP       string `json:"ip"`
	Location string `json:"location"`
}

// DayRecord is the per-day read view folded from the raw events. A day
// may hold either side alone; the absent side stays null.
type DayRecord struct {
	Date      string  `json:"date"`
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
	Location  *string `json:"location"`
	IPAddress *string `json:"ip_address"`
}

type HistoryResponse struct {
	Records []DayRecord `json:"records"`
}
