// Package domain holds the typed records of the legal case/file catalog and
// the result envelopes produced by the search core.
package domain

import (
	"strings"
	"time"
)

// ClientRow is a client candidate returned by the catalog facade.
// Relevance is the facade-supplied pre-ranking score; the scorer recomputes
// the surfaced relevance_score field-by-field.
type ClientRow struct {
	ClientID    string    `json:"client_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	ClientType  string    `json:"client_type"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
	Relevance   int       `json:"-"`
}

// FullName joins first and last name, tolerating either being empty.
func (c ClientRow) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CaseRow is a case candidate with the client name joined in.
type CaseRow struct {
	CaseID          string    `json:"case_id"`
	ReferenceNumber string    `json:"reference_number"`
	ClientID        string    `json:"client_id"`
	CaseType        string    `json:"case_type"`
	Description     string    `json:"description"`
	AssignedLawyer  string    `json:"assigned_lawyer"`
	CaseStatus      string    `json:"case_status"`
	Priority        string    `json:"priority"`
	CreatedDate     time.Time `json:"created_date"`
	ClientName      string    `json:"client_name"`
	Relevance       int       `json:"-"`
}

// FileRow is a physical file candidate with client and case fields joined in.
type FileRow struct {
	FileID               string     `json:"file_id"`
	ReferenceNumber      string     `json:"reference_number"`
	ClientID             string     `json:"client_id"`
	CaseID               *string    `json:"case_id"`
	FileType             string     `json:"file_type"`
	DocumentCategory     string     `json:"document_category"`
	FileDescription      string     `json:"file_description"`
	Keywords             []string   `json:"keywords"`
	WarehouseLocation    string     `json:"warehouse_location"`
	ShelfNumber          string     `json:"shelf_number"`
	BoxNumber            string     `json:"box_number"`
	ConfidentialityLevel string     `json:"confidentiality_level"`
	StorageStatus        string     `json:"storage_status"`
	CreatedDate          time.Time  `json:"created_date"`
	LastAccessed         *time.Time `json:"last_accessed"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	CaseType             string     `json:"case_type"`
	Relevance            int        `json:"-"`
}

// ClientName joins the denormalized client first/last name.
func (f FileRow) ClientName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

// PaymentRow is a payment candidate with the client name joined in.
// Amount is carried as its decimal text form; relevance matching on amounts
// is a substring test over that form.
type PaymentRow struct {
	PaymentID     string    `json:"payment_id"`
	ClientID      string    `json:"client_id"`
	CaseID        *string   `json:"case_id"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Description   string    `json:"description"`
	PaymentDate   time.Time `json:"payment_date"`
	ClientName    string    `json:"client_name"`
	Relevance     int       `json:"-"`
}

// AccessRow is an append-only file access log entry with the file reference
// number joined in. Access rows are never updated or deleted.
type AccessRow struct {
	AccessID        string    `json:"access_id"`
	FileID          string    `json:"file_id"`
	UserName        string    `json:"user_name"`
	UserRole        string    `json:"user_role"`
	AccessTimestamp time.Time `json:"access_timestamp"`
	AccessType      string    `json:"access_type"`
	IPAddress       string    `json:"ip_address"`
	UserAgent       string    `json:"user_agent"`
	ReferenceNumber string    `json:"reference_number"`
}

// FileAccessInput describes a file access to be recorded.
type FileAccessInput struct {
	FileID     string
	UserName   string
	UserRole   string
	AccessType string
	IPAddress  string
	UserAgent  string
}

// FileFilters narrows file search results. Empty fields are not applied.
// Filters apply to the files category only.
type FileFilters struct {
	CaseType             string
	FileType             string
	ConfidentialityLevel string
	StorageStatus        string
	WarehouseLocation    string
}

// IsZero reports whether no filter is set.
func (f FileFilters) IsZero() bool {
	return f == FileFilters{}
}

// FilterOptions lists the distinct values available for file filtering.
type FilterOptions struct {
	CaseTypes             []string `json:"case_types"`
	FileTypes             []string `json:"file_types"`
	ConfidentialityLevels []string `json:"confidentiality_levels"`
	WarehouseLocations    []string `json:"warehouse_locations"`
	StorageStatuses       []string `json:"storage_statuses"`
}

// Vocabulary is the distinct-term inventory used for completions and typo
// correction candidates.
type Vocabulary struct {
	ClientNames        []string
	FirstNames         []string
	LastNames          []string
	CaseTypes          []string
	FileTypes          []string
	DocumentCategories []string
	Keywords           []string
}

// PopularSearch is a logged query with its occurrence count.
type PopularSearch struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
