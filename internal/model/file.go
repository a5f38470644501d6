package model

type UploadImageRequest struct{}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type UploadAvatarRequest struct{}

type UploadAvatarResponse struct {
	URLs []string `json:"urls"`
}
