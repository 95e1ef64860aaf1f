package server

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/risk-dashboard/internal/dashboard"
	"github.com/sells-group/risk-dashboard/internal/fetcher"
	"github.com/sells-group/risk-dashboard/internal/model"
)

// uploadField is the multipart form field carrying the file.
const uploadField = "file"

// UploadResponse reports the outcome of an upload.
type UploadResponse struct {
	UploadID string `json:"upload_id"`
	dashboard.CommitResult
}

// handleUpload replaces one collection with the rows of an uploaded file.
// Files that cannot be decoded, or that normalize to nothing, leave the state
// untouched and are reported with committed=false.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	kind, ok := model.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "unknown upload kind"})
		return
	}

	id := uuid.NewString()
	ticket := s.state.BeginUpload(kind)
	log := zap.L().With(
		zap.String("upload_id", id),
		zap.String("kind", string(kind)),
		zap.Uint64("seq", ticket.Seq),
	)

	upload, err := s.readUpload(w, r)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		log.Warn("server: upload rejected", zap.Error(err))
		render.Status(r, status)
		render.JSON(w, r, UploadResponse{
			UploadID:     id,
			CommitResult: dashboard.CommitResult{Kind: kind, Reason: "unreadable upload"},
		})
		return
	}

	rows, err := fetcher.Rows(upload)
	if err != nil {
		log.Warn("server: upload could not be parsed", zap.String("format", string(upload.Format)), zap.Error(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, UploadResponse{
			UploadID:     id,
			CommitResult: dashboard.CommitResult{Kind: kind, Reason: "unparseable " + string(upload.Format) + " file"},
		})
		return
	}

	res := s.state.Commit(ticket, rows)
	log.Info("server: upload processed",
		zap.String("format", string(upload.Format)),
		zap.Int("rows", res.Rows),
		zap.Bool("committed", res.Committed),
	)
	render.JSON(w, r, UploadResponse{UploadID: id, CommitResult: res})
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (fetcher.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return fetcher.Upload{}, eris.Wrap(err, "server: parse multipart form")
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return fetcher.Upload{}, eris.Wrap(err, "server: read form file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fetcher.Upload{}, eris.Wrap(err, "server: read upload body")
	}

	contentType := header.Header.Get("Content-Type")
	var charset string
	if mediaType, params, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
		charset = params["charset"]
	}

	u := fetcher.Upload{
		Data:    data,
		Format:  fetcher.Detect(header.Filename, contentType),
		Charset: charset,
	}
	if sheet := r.FormValue("sheet"); sheet != "" {
		u.Sheet.SheetName = sheet
	}
	return u, nil
}
