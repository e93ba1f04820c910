package handler

import (
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/minio"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/pkg/util"
	"WithTheLake/internal/service"
	"bytes"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const thumbnailMaxSize = 512

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 后台素材上传：资讯封面、商品图、音轨文件与封面。
// 图片会同步生成缩略图，缩略图失败不影响原图上传。
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isImage := strings.HasPrefix(contentType, consts.MimePrefixImage)
	isAudio := strings.HasPrefix(contentType, consts.MimePrefixAudio)
	if !isImage && !isAudio {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	var thumbnailURL string
	if isImage {
		thumbnailURL = s.uploadThumbnail(c, reader, fileKey)
	}

	res := map[string]interface{}{
		"url":          minio.GetPublicURL(fileKey),
		"thumbnailUrl": thumbnailURL,
		"mime":         contentType,
		"size":         file.Size,
		"original":     file.Filename,
	}

	log.InfoContext(c.Request.Context(), "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, res)
}

func (s *MediaHandler) uploadThumbnail(c *gin.Context, reader io.ReadSeeker, fileKey string) string {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return ""
	}

	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		log.WarnContext(c.Request.Context(), "thumbnail decode failed", "fileKey", fileKey, "err", err)
		return ""
	}

	thumb := imaging.Fit(img, thumbnailMaxSize, thumbnailMaxSize, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		log.WarnContext(c.Request.Context(), "thumbnail encode failed", "fileKey", fileKey, "err", err)
		return ""
	}

	thumbName := strings.TrimSuffix(fileKey, path.Ext(fileKey)) + "_thumb.jpg"
	thumbKey, err := minio.UploadFile(c.Request.Context(), thumbName, buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		log.WarnContext(c.Request.Context(), "thumbnail upload failed", "fileKey", fileKey, "err", err)
		return ""
	}

	return minio.GetPublicURL(thumbKey)
}
