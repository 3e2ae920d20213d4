package cognitiveHandler

import (
	contextPkg "AcawsGolang/pkg/context"
	"AcawsGolang/pkg/handlerUtil"
	"AcawsGolang/pkg/log"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// AnalyzeFrameUpload accepts a multipart camera frame and runs server-side
// landmark detection on it.
func (h *CognitiveHandler) AnalyzeFrameUpload(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing frame upload request")

	sessionID := ctx.FormValue("session_id")
	if sessionID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session ID is required"), ctx.Path())
	}

	file, err := ctx.FormFile("frame")
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_frame_file")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"file_name":  file.Filename,
		"file_size":  file.Size,
	}).Debug("Processing file upload")

	if err := h.utils.ValidateImageFile(file); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_image_file")
	}

	fileContent, err := file.Open()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
	}
	defer fileContent.Close()

	frame, err := io.ReadAll(fileContent)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_file")
	}

	summary, err := h.cognitiveService.AnalyzeFrame(c, sessionID, frame)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_frame")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
	}
}
