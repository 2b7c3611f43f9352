package http

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	"github.com/rafabene/recruit-backend/internal/services"
)

// maxWebhookBody limita o corpo lido dos webhooks
const maxWebhookBody = 1 << 20

// bindJSON lê o corpo; em caso de erro já responde 400
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		dto.AbortWithProblem(c, dto.BindingErrorResponse(c, err))
		return false
	}
	return true
}

// readImage lê o campo multipart "file" detectando o tipo pelo conteúdo
func readImage(c *gin.Context) (services.ImageUpload, func(), bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxImageSize+(1<<20))

	header, err := c.FormFile("file")
	if err != nil {
		dto.AbortWithProblem(c, dto.FieldErrorResponse(c, "file", "error.invalid_image"))
		return services.ImageUpload{}, nil, false
	}

	file, err := header.Open()
	if err != nil {
		dto.AbortWithProblem(c, dto.FieldErrorResponse(c, "file", "error.invalid_image"))
		return services.ImageUpload{}, nil, false
	}

	contentType, body, err := sniff(file)
	if err != nil {
		_ = file.Close()
		dto.AbortWithProblem(c, dto.FieldErrorResponse(c, "file", "error.invalid_image"))
		return services.ImageUpload{}, nil, false
	}

	upload := services.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        body,
	}
	return upload, func() { _ = file.Close() }, true
}

func sniff(file multipart.File) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	head = head[:n]
	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), file), nil
}

// readWebhook lê o corpo bruto exigido pela verificação de assinatura
func readWebhook(c *gin.Context) ([]byte, bool) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c))
		return nil, false
	}
	return payload, true
}
