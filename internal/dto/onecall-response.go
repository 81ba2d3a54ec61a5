package dto

// OneCallResponse holds the parts of the OpenWeather one-call payload the
// report is built from. Pointer fields distinguish a missing value from zero.
type OneCallResponse struct {
	Lat      float64      `json:"lat"`
	Lon      float64      `json:"lon"`
	Timezone string       `json:"timezone"`
	Current  *CurrentInfo `json:"current"`
	Alerts   []AlertInfo  `json:"alerts"`
}

type CurrentInfo struct {
	Dt      int64            `json:"dt"`
	Temp    *float64         `json:"temp"`
	Weather []*ConditionInfo `json:"weather"`
}

type ConditionInfo struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type AlertInfo struct {
	SenderName  string `json:"sender_name"`
	Event       string `json:"event"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	Description string `json:"description"`
}

// ErrorResponse is the body OpenWeather sends with a non-2xx status. Cod is
// a number on some endpoints and a string on others.
type ErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
