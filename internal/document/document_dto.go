package document

type PresignUploadRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	FileName     string `json:"file_name" binding:"required"`
	MimeType     string `json:"mime_type" binding:"required"`
}

type UploadDocumentRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	FileName     string `json:"file_name" binding:"required"`
	FileKey      string `json:"file_key" binding:"required"`
	FileSize     int64  `json:"file_size" binding:"required,gt=0"`
	MimeType     string `json:"mime_type"`
}

type ReviewDocumentRequest struct {
	Status   string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Comments string `json:"comments"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	DocumentType string `json:"document_type"`
	Status       string `json:"status"`
	FileName     string `json:"file_name"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `json:"mime_type,omitempty"`
	DownloadURL  string `json:"download_url,omitempty"`
	ReviewedBy   string `json:"reviewed_by,omitempty"`
	ReviewedAt   string `json:"reviewed_at,omitempty"`
	Comments     string `json:"comments,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type VerificationStatusResponse struct {
	EmployeeID    string   `json:"employee_id"`
	Complete      bool     `json:"complete"`
	MissingTypes  []string `json:"missing_types"`
	ApprovedTypes []string `json:"approved_types"`
}
