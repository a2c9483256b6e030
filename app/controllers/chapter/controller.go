package chapters

import (
	"mime/multipart"

	"github.com/thatboywest/elearningbackend/app/services"
)

// Controller exposes chapter CRUD over HTTP.
type Controller struct {
	chapters *services.ChapterService
}

func NewController(chapters *services.ChapterService) *Controller {
	return &Controller{chapters: chapters}
}

// openAsset turns a multipart file into the service-level asset. The
// returned closer must be closed after the service call.
func openAsset(fileHeader *multipart.FileHeader) (services.Asset, multipart.File, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return services.Asset{}, nil, err
	}
	return services.Asset{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      file,
	}, file, nil
}
