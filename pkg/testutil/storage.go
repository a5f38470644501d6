package testutil

import (
	"context"

	"github.com/sidequests/backend/pkg/storage"
)

type MockStorage struct {
	UploadFunc     func(context.Context, *storage.UploadObject) (*storage.UploadResponse, error)
	BulkUploadFunc func(context.Context, []*storage.UploadObject) ([]*storage.UploadResponse, error)
}

func (m *MockStorage) Upload(
	ctx context.Context, obj *storage.UploadObject,
) (*storage.UploadResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, obj)
	}

	return &storage.UploadResponse{Url: "http://storage/" + obj.FileName, FileName: obj.FileName}, nil
}

func (m *MockStorage) BulkUpload(
	ctx context.Context, objs []*storage.UploadObject,
) ([]*storage.UploadResponse, error) {
	if m.BulkUploadFunc != nil {
		return m.BulkUploadFunc(ctx, objs)
	}

	resps := make([]*storage.UploadResponse, 0, len(objs))
	for _, obj := range objs {
		resps = append(resps, &storage.UploadResponse{
			Url:      "http://storage/" + obj.FileName,
			FileName: obj.FileName,
		})
	}

	return resps, nil
}
