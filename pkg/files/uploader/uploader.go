package uploader

//go:generate mockgen -destination=../../../test/mock/files/uploader/uploader.go -package=mock_uploader github.com/filesmanager/image-upload/pkg/files/uploader FileCreator

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/filesmanager/image-upload/pkg/files/model"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// FileCreator stores a new file resource on the files manager.
type FileCreator interface {
	CreateFile(ctx context.Context, req model.UploadRequest) (json.RawMessage, error)
}

type Uploader struct {
	creator       FileCreator
	uploadedBytes metric.Int64Counter
	failedCount   metric.Int64Counter
}

func NewUploader(creator FileCreator) *Uploader {
	return &Uploader{
		creator:       creator,
		uploadedBytes: otlp_util.NewInt64Counter("files.upload.encoded.bytes", metric.WithDescription("The total number of base64 encoded bytes uploaded")),
		failedCount:   otlp_util.NewInt64Counter("files.upload.failed.count", metric.WithDescription("The total number of failed uploads")),
	}
}

// NewUploadRequest reads the file at filePath and builds the public image upload for it.
func NewUploadRequest(filePath, parentID string) (model.UploadRequest, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return model.UploadRequest{}, fmt.Errorf("read file %q: %w%w", filePath, err, model.ErrFileRead)
	}

	name, _ := lo.Last(strings.Split(filePath, "/"))
	req := model.UploadRequest{
		Name:     name,
		Type:     model.FileTypeImage,
		IsPublic: true,
		Data:     base64.StdEncoding.EncodeToString(content),
		ParentID: parentID,
	}
	if err := ValidateUploadRequest(req); err != nil {
		return model.UploadRequest{}, err
	}
	return req, nil
}

// Upload sends the file at filePath into the folder parentID and returns the server's JSON answer.
func (u *Uploader) Upload(ctx context.Context, filePath, parentID string) (json.RawMessage, error) {
	req, err := NewUploadRequest(filePath, parentID)
	if err != nil {
		u.failedCount.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", "prepare")))
		return nil, err
	}
	logrus.Debugf("File path is: %s", filePath)
	logrus.Debugf("File name is: %s", req.Name)
	logrus.Debugf("Parent ID is: %s", req.ParentID)

	result, err := u.creator.CreateFile(ctx, req)
	if err != nil {
		u.failedCount.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", "send")))
		return nil, err
	}

	u.uploadedBytes.Add(ctx, int64(len(req.Data)))
	return result, nil
}
