package domain

import (
	"github.com/sidequests/backend/internal/common"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/pkg/storage"
	"github.com/sidequests/backend/pkg/xcontext"
)

type FileDomain interface {
	UploadImage(xcontext.Context, *model.UploadImageRequest) (*model.UploadImageResponse, error)
	UploadAvatar(xcontext.Context, *model.UploadAvatarRequest) (*model.UploadAvatarResponse, error)
}

type fileDomain struct {
	storage storage.Storage
}

func NewFileDomain(storage storage.Storage) FileDomain {
	return &fileDomain{storage: storage}
}

func (d *fileDomain) UploadImage(
	ctx xcontext.Context, req *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	resp, err := common.ProcessImage(ctx, d.storage, "image", "quests")
	if err != nil {
		return nil, err
	}

	return &model.UploadImageResponse{URL: resp.Url}, nil
}

func (d *fileDomain) UploadAvatar(
	ctx xcontext.Context, req *model.UploadAvatarRequest,
) (*model.UploadAvatarResponse, error) {
	resps, err := common.ProcessAvatar(ctx, d.storage, "image")
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(resps))
	for _, resp := range resps {
		urls = append(urls, resp.Url)
	}

	return &model.UploadAvatarResponse{URLs: urls}, nil
}
