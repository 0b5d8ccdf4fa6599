package models

// ViewMode is the operator console's main panel mode
type ViewMode string

const (
	ViewModeMap  ViewMode = "map"
	ViewModeList ViewMode = "list"
)

// DisplayState is the operator console rendering state held by the board.
// The service keeps it authoritative so every console renders the same
// panel; consoles receive it on connect and read it back over HTTP.
type DisplayState struct {
	ViewMode        ViewMode `json:"view_mode"`
	ShowTraffic     bool     `json:"show_traffic"`
	ShowServiceArea bool     `json:"show_service_area"`
	ShowRoutes      bool     `json:"show_routes"`
	OptimizeRoutes  bool     `json:"optimize_routes"`
	SelectedWorker  string   `json:"selected_worker,omitempty"`
	SelectedBooking string   `json:"selected_booking,omitempty"`
}
