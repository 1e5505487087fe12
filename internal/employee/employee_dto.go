package employee

import "io"

// FileUpload carries a file received from a multipart form into the
// service layer without binding it to gin.
type FileUpload struct {
	Content     io.Reader
	Filename    string
	ContentType string
}

type CreateEmployeeRequest struct {
	Name          string `form:"name" binding:"required"`
	Age           int    `form:"age" binding:"required,gt=0"`
	ContactNumber string `form:"contact" binding:"required"`
	Company       string `form:"company" binding:"required"`
	Role          string `form:"role" binding:"required"`
	Status        string `form:"status" binding:"required"`

	Resume *FileUpload `form:"-"`
}

type UpdateEmployeeRequest struct {
	Name          string  `form:"name" binding:"required"`
	Age           int     `form:"age" binding:"required,gt=0"`
	ContactNumber string  `form:"contact" binding:"required"`
	Company       string  `form:"company" binding:"required"`
	Role          string  `form:"role" binding:"required"`
	Status        string  `form:"status" binding:"required"`
	Remarks       *string `form:"remarks"`

	// Per-file instructions: an explicit delete flag removes blob and
	// reference; a new upload replaces the stored blob; neither leaves
	// the reference untouched.
	DeleteResume      bool `form:"delete_resume"`
	DeleteOfferLetter bool `form:"delete_offer_letter"`

	Resume      *FileUpload `form:"-"`
	OfferLetter *FileUpload `form:"-"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	RefID          string  `json:"ref_id"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Company        string  `json:"company"`
	Role           string  `json:"role"`
	Status         string  `json:"status"`
	ContactNumber  string  `json:"contact_number"`
	ResumeURL      *string `json:"resume_url,omitempty"`
	OfferLetterURL *string `json:"offer_letter_url,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type SummaryRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Site     string `json:"site"`
}

// SummaryResponse mirrors the dashboard contract: one integer per known
// status plus a total over the known buckets only.
type SummaryResponse struct {
	Selected int64 `json:"selected"`
	Offered  int64 `json:"offered"`
	Rejected int64 `json:"rejected"`
	Joined   int64 `json:"joined"`
	Pending  int64 `json:"pending"`
	Left     int64 `json:"left"`
	Total    int64 `json:"total"`
}
