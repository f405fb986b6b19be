package model

type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// UploadRequest is the body of POST /files.
type UploadRequest struct {
	Name     string   `json:"name"`     // Base name of the uploaded file.
	Type     FileType `json:"type"`     // Always FileTypeImage for this tool.
	IsPublic bool     `json:"isPublic"` // Always true for this tool.
	Data     string   `json:"data"`     // Standard base64 of the file content.
	ParentID string   `json:"parentId"` // ID of the destination folder.
}

// File is the resource the files manager returns once the upload is stored.
type File struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId"`
	Name     string   `json:"name"`
	Type     FileType `json:"type"`
	IsPublic bool     `json:"isPublic"`
	ParentID any      `json:"parentId"` // The server answers 0 for the root folder and a string ID otherwise.
}

type ErrorResponse struct {
	Error string `json:"error"`
}
