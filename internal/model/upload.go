package model

type UploadURLPayload struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

func (p *UploadURLPayload) Validate() error {
	return validate.Struct(p)
}

type UploadURL struct {
	URL         string `json:"url"`
	S3ObjectKey string `json:"s3ObjectKey"`
}
