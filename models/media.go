package models

import "io"

// UploadedFile describes an object put into media storage.
type UploadedFile struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// RemoveMediaRequest is the payload of DELETE /media/remove.
type RemoveMediaRequest struct {
	Key string `json:"key"`
}

// MediaFile is one file received for upload.
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}
