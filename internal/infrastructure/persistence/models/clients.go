package models

// Client is a person whose immigration case the firm tracks.
type Client struct {
	BaseModel
	Name              string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	ANumber           *string `json:"a_number,omitempty" binding:"omitempty,a_number"`
	Email             *string `json:"email,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	ZipCode           *string `json:"zip_code,omitempty"`
	Comments          *string `json:"comments,omitempty"`
	JudgeID           *uint   `gorm:"index" json:"judge_id,omitempty"`
	ComponentStatusID uint    `gorm:"not null;index" json:"component_status_id" binding:"required"`

	Judge      *Judge          `gorm:"-" json:"judge,omitempty"`
	CourtCases []CourtCase     `gorm:"-" json:"court_cases,omitempty"`
	History    []ClientHistory `gorm:"-" json:"history,omitempty"`
	Notes      []ClientNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps Client to its table
func (Client) TableName() string { return "clients" }

// StatusID returns the component status foreign key
func (c *Client) StatusID() uint { return c.ComponentStatusID }

// ClientHistory is an immutable snapshot of a client at the moment of a mutation.
type ClientHistory struct {
	BaseModel
	UserName          string  `gorm:"not null" json:"user_name"`
	ClientID          uint    `gorm:"not null;index" json:"client_id"`
	Name              string  `json:"name"`
	ANumber           *string `json:"a_number,omitempty"`
	Email             *string `json:"email,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	ZipCode           *string `json:"zip_code,omitempty"`
	Comments          *string `json:"comments,omitempty"`
	JudgeID           *uint   `json:"judge_id,omitempty"`
	ComponentStatusID uint    `json:"component_status_id"`
}

// TableName maps ClientHistory to its table
func (ClientHistory) TableName() string { return "client_histories" }

// HistoryRow builds the audit snapshot for the current client state.
func (c *Client) HistoryRow(userName string) *ClientHistory {
	return &ClientHistory{
		UserName:          userName,
		ClientID:          c.ID,
		Name:              c.Name,
		ANumber:           c.ANumber,
		Email:             c.Email,
		PhoneNumber:       c.PhoneNumber,
		Address:           c.Address,
		City:              c.City,
		State:             c.State,
		ZipCode:           c.ZipCode,
		Comments:          c.Comments,
		JudgeID:           c.JudgeID,
		ComponentStatusID: c.ComponentStatusID,
	}
}

// ClientNote is a free-text annotation on a client.
type ClientNote struct {
	BaseModel
	UserName string `gorm:"not null" json:"user_name"`
	ClientID uint   `gorm:"not null;index" json:"client_id"`
	NoteText string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps ClientNote to its table
func (ClientNote) TableName() string { return "client_notes" }

// CourtCase is one case proceeding for a client.
type CourtCase struct {
	BaseModel
	CaseTypeID        uint    `gorm:"not null;index" json:"case_type_id" binding:"required"`
	ClientID          uint    `gorm:"not null;index" json:"client_id" binding:"required"`
	Comments          *string `json:"comments,omitempty"`
	ComponentStatusID uint    `gorm:"not null;index" json:"component_status_id" binding:"required"`

	Client           *Client            `gorm:"-" json:"client,omitempty"`
	Filings          []Filing           `gorm:"-" json:"filings,omitempty"`
	HearingCalendars []HearingCalendar  `gorm:"-" json:"hearing_calendars,omitempty"`
	CaseCollections  []CaseCollection   `gorm:"-" json:"case_collections,omitempty"`
	History          []CourtCaseHistory `gorm:"-" json:"history,omitempty"`
	Notes            []CourtCaseNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps CourtCase to its table
func (CourtCase) TableName() string { return "court_cases" }

// StatusID returns the component status foreign key
func (c *CourtCase) StatusID() uint { return c.ComponentStatusID }

// CourtCaseHistory is an immutable snapshot of a court case at the moment of a mutation.
type CourtCaseHistory struct {
	BaseModel
	UserName          string  `gorm:"not null" json:"user_name"`
	CourtCaseID       uint    `gorm:"not null;index" json:"court_case_id"`
	CaseTypeID        uint    `json:"case_type_id"`
	ClientID          uint    `json:"client_id"`
	Comments          *string `json:"comments,omitempty"`
	ComponentStatusID uint    `json:"component_status_id"`
}

// TableName maps CourtCaseHistory to its table
func (CourtCaseHistory) TableName() string { return "court_case_histories" }

// HistoryRow builds the audit snapshot for the current court case state.
func (c *CourtCase) HistoryRow(userName string) *CourtCaseHistory {
	return &CourtCaseHistory{
		UserName:          userName,
		CourtCaseID:       c.ID,
		CaseTypeID:        c.CaseTypeID,
		ClientID:          c.ClientID,
		Comments:          c.Comments,
		ComponentStatusID: c.ComponentStatusID,
	}
}

// CourtCaseNote is a free-text annotation on a court case.
type CourtCaseNote struct {
	BaseModel
	UserName    string `gorm:"not null" json:"user_name"`
	CourtCaseID uint   `gorm:"not null;index" json:"court_case_id"`
	NoteText    string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps CourtCaseNote to its table
func (CourtCaseNote) TableName() string { return "court_case_notes" }
