package resumes

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
	Country   string `json:"country,omitempty"`
	LinkedIn  string `json:"linkedIn,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

type Certification struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"` // beginner | intermediate | advanced | native
}

type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// JSONB column wrappers. Sections are free-form documents with no
// cross-resume invariants, so they live as jsonb blobs rather than
// relational rows.
type (
	ExperienceList    []Experience
	EducationList     []Education
	SkillList         []string
	ProjectList       []Project
	CertificationList []Certification
	LanguageList      []Language
	CustomSectionList []CustomSection
)

func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonbScan(dst interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	}
	return errors.New("unsupported jsonb source type")
}

func (p PersonalInfo) Value() (driver.Value, error) { return jsonbValue(p) }
func (p *PersonalInfo) Scan(src interface{}) error  { return jsonbScan(p, src) }

func (l ExperienceList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *ExperienceList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l EducationList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *EducationList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l SkillList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *SkillList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l ProjectList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *ProjectList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l CertificationList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *CertificationList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l LanguageList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *LanguageList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l CustomSectionList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *CustomSectionList) Scan(src interface{}) error  { return jsonbScan(l, src) }

type Resume struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index:idx_resumes_user_updated" json:"userId"`

	Title    string `gorm:"not null" json:"title"`
	Template string `gorm:"not null;default:'modern'" json:"template"`

	PersonalInfo   PersonalInfo      `gorm:"type:jsonb" json:"personalInfo"`
	Summary        string            `json:"summary,omitempty"`
	Experience     ExperienceList    `gorm:"type:jsonb" json:"experience"`
	Education      EducationList     `gorm:"type:jsonb" json:"education"`
	Skills         SkillList         `gorm:"type:jsonb" json:"skills"`
	Projects       ProjectList       `gorm:"type:jsonb" json:"projects,omitempty"`
	Certifications CertificationList `gorm:"type:jsonb" json:"certifications,omitempty"`
	Languages      LanguageList      `gorm:"type:jsonb" json:"languages,omitempty"`
	CustomSections CustomSectionList `gorm:"type:jsonb" json:"customSections,omitempty"`

	IsPublic bool `gorm:"not null;default:false" json:"isPublic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"index:idx_resumes_user_updated" json:"updatedAt"`
}
