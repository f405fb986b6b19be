package uploader

import (
	"fmt"

	"github.com/filesmanager/image-upload/pkg/files/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateUploadRequest(req model.UploadRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In(
			model.FileTypeFolder,
			model.FileTypeFile,
			model.FileTypeImage,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
