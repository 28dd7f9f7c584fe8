package models

// Court is an immigration court location.
type Court struct {
	BaseModel
	Name              string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	CourtURL          *string `json:"court_url,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	ZipCode           *string `json:"zip_code,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Comments          *string `json:"comments,omitempty"`
	ComponentStatusID uint    `gorm:"not null;index" json:"component_status_id" binding:"required"`

	// Enrichment only, loaded explicitly when requested.
	Judges  []Judge        `gorm:"-" json:"judges,omitempty"`
	History []CourtHistory `gorm:"-" json:"history,omitempty"`
	Notes   []CourtNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps Court to its table
func (Court) TableName() string { return "courts" }

// StatusID returns the component status foreign key
func (c *Court) StatusID() uint { return c.ComponentStatusID }

// CourtHistory is an immutable snapshot of a court at the moment of a mutation.
type CourtHistory struct {
	BaseModel
	UserName          string  `gorm:"not null" json:"user_name"`
	CourtID           uint    `gorm:"not null;index" json:"court_id"`
	Name              string  `json:"name"`
	CourtURL          *string `json:"court_url,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	ZipCode           *string `json:"zip_code,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Comments          *string `json:"comments,omitempty"`
	ComponentStatusID uint    `json:"component_status_id"`
}

// TableName maps CourtHistory to its table
func (CourtHistory) TableName() string { return "court_histories" }

// HistoryRow builds the audit snapshot for the current court state.
func (c *Court) HistoryRow(userName string) *CourtHistory {
	return &CourtHistory{
		UserName:          userName,
		CourtID:           c.ID,
		Name:              c.Name,
		CourtURL:          c.CourtURL,
		Address:           c.Address,
		City:              c.City,
		State:             c.State,
		ZipCode:           c.ZipCode,
		PhoneNumber:       c.PhoneNumber,
		Comments:          c.Comments,
		ComponentStatusID: c.ComponentStatusID,
	}
}

// CourtNote is a free-text annotation on a court. Notes are not versioned.
type CourtNote struct {
	BaseModel
	UserName string `gorm:"not null" json:"user_name"`
	CourtID  uint   `gorm:"not null;index" json:"court_id"`
	NoteText string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps CourtNote to its table
func (CourtNote) TableName() string { return "court_notes" }

// Judge is an immigration judge assigned to a court.
type Judge struct {
	BaseModel
	Name              string  `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	Webex             *string `json:"webex,omitempty"`
	Comments          *string `json:"comments,omitempty"`
	CourtID           uint    `gorm:"not null;index" json:"court_id" binding:"required"`
	ComponentStatusID uint    `gorm:"not null;index" json:"component_status_id" binding:"required"`

	Court   *Court         `gorm:"-" json:"court,omitempty"`
	Clients []Client       `gorm:"-" json:"clients,omitempty"`
	History []JudgeHistory `gorm:"-" json:"history,omitempty"`
	Notes   []JudgeNote    `gorm:"-" json:"notes,omitempty"`
}

// TableName maps Judge to its table
func (Judge) TableName() string { return "judges" }

// StatusID returns the component status foreign key
func (j *Judge) StatusID() uint { return j.ComponentStatusID }

// JudgeHistory is an immutable snapshot of a judge at the moment of a mutation.
type JudgeHistory struct {
	BaseModel
	UserName          string  `gorm:"not null" json:"user_name"`
	JudgeID           uint    `gorm:"not null;index" json:"judge_id"`
	Name              string  `json:"name"`
	Webex             *string `json:"webex,omitempty"`
	Comments          *string `json:"comments,omitempty"`
	CourtID           uint    `json:"court_id"`
	ComponentStatusID uint    `json:"component_status_id"`
}

// TableName maps JudgeHistory to its table
func (JudgeHistory) TableName() string { return "judge_histories" }

// HistoryRow builds the audit snapshot for the current judge state.
func (j *Judge) HistoryRow(userName string) *JudgeHistory {
	return &JudgeHistory{
		UserName:          userName,
		JudgeID:           j.ID,
		Name:              j.Name,
		Webex:             j.Webex,
		Comments:          j.Comments,
		CourtID:           j.CourtID,
		ComponentStatusID: j.ComponentStatusID,
	}
}

// JudgeNote is a free-text annotation on a judge.
type JudgeNote struct {
	BaseModel
	UserName string `gorm:"not null" json:"user_name"`
	JudgeID  uint   `gorm:"not null;index" json:"judge_id"`
	NoteText string `gorm:"not null" json:"note_text" binding:"required"`
}

// TableName maps JudgeNote to its table
func (JudgeNote) TableName() string { return "judge_notes" }
