package domain

// Option is one entry of a static dropdown
type Option struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// UserView is one line of a project roster
type UserView struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name"`
	IsActive bool   `json:"is_active"`
}

// ProjectView is a project the requester may filter on. UsersDetails is nil
// when the roster is withheld from the requester; a non-nil empty slice means
// the roster was disclosed and nobody is on it.
type ProjectView struct {
	ProjectID              int         `json:"project_id"`
	ProjectName            string      `json:"project_name"`
	IsPrivate              bool        `json:"is_private"`
	IsProjectActive        bool        `json:"is_project_active"`
	RoleID                 int         `json:"role_id"`
	IsUserManagerOnProject bool        `json:"is_user_manager_on_project"`
	UsersDetails           *[]UserView `json:"users_details,omitempty"`
}

// ClientView groups the visible projects of one client
type ClientView struct {
	ClientID        int           `json:"client_id"`
	ClientName      string        `json:"client_name"`
	IsClientActive  bool          `json:"is_client_active"`
	ProjectsDetails []ProjectView `json:"projects_details"`
}

// UserDetails echoes the requester
type UserDetails struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	IsAdmin   bool   `json:"is_admin"`
	IsManager bool   `json:"is_manager"`
	WeekStart int    `json:"week_start"`
	TimeZone  string `json:"time_zone,omitempty"`
}

// DropDowns is everything a client needs to build the report form
type DropDowns struct {
	Filters       []ClientView  `json:"filters"`
	GroupBy       []Option      `json:"group_by"`
	ShowColumns   []Option      `json:"show_columns"`
	DateStatic    []Option      `json:"date_static"`
	CustomQueries []ReportQuery `json:"custom_queries"`
	UserDetails   UserDetails   `json:"user_details"`
	CurrentQuery  ReportQuery   `json:"current_query"`
}

// EntryRow is a time entry flattened for display
type EntryRow struct {
	ID               int    `json:"id"`
	Date             string `json:"date"`
	MemberID         int    `json:"member_id"`
	MemberName       string `json:"member_name"`
	ProjectID        int    `json:"project_id"`
	ProjectName      string `json:"project_name"`
	ClientID         int    `json:"client_id"`
	ClientName       string `json:"client_name"`
	TaskTypeName     string `json:"task_type_name,omitempty"`
	Notes            string `json:"notes,omitempty"`
	TimeFrom         int    `json:"time_from"`
	TimeTo           int    `json:"time_to"`
	ActualSeconds    int64  `json:"actual_seconds"`
	EstimatedSeconds int64  `json:"estimated_seconds"`
}

// GroupView is one group of the grid
type GroupView struct {
	ID                    int        `json:"id,omitempty"`
	Name                  string     `json:"name"`
	Entries               []EntryRow `json:"entries"`
	TotalActualSeconds    int64      `json:"total_actual_seconds"`
	TotalEstimatedSeconds int64      `json:"total_estimated_seconds"`
}

// GridResult is a grouped and totaled report. SingleProjectName is set when
// the query filtered on exactly one project.
type GridResult struct {
	GroupByID             int         `json:"group_by_id"`
	DateFrom              string      `json:"date_from"`
	DateTo                string      `json:"date_to"`
	SingleProjectName     *string     `json:"single_project_name,omitempty"`
	Groups                []GroupView `json:"groups"`
	TotalActualSeconds    int64       `json:"total_actual_seconds"`
	TotalEstimatedSeconds int64       `json:"total_estimated_seconds"`
	CurrentQuery          ReportQuery `json:"current_query"`
}

// ExportResult is a rendered file. Deferred formats come back with an empty
// Bytes and Deferred set.
type ExportResult struct {
	Bytes       []byte
	FileName    string
	ContentType string
	RenderID    string
	Deferred    bool
}
