package domain

type ContactMessageDTO struct {
	Name      string  `json:"name" binding:"required,min=2,max=100"`
	Phone     string  `json:"phone" binding:"required,phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	ServiceID *string `json:"service_id" binding:"omitempty,uuid"`
	Message   string  `json:"message" binding:"required,min=3,max=2000"`
}

type UploadResult struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}
