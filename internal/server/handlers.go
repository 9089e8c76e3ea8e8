package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"footmetric/internal/annotate"
	"footmetric/internal/measure"
	"footmetric/internal/pipeline"
)

// maxUploadBytes caps multipart uploads at 50MB.
const maxUploadBytes = 50 << 20

// allowedDataURIPrefixes is the upload allowlist of the original
// client contract; anything else is rejected before decoding.
var allowedDataURIPrefixes = map[string]string{
	"data:image/png;":  ".png",
	"data:image/jpeg;": ".jpg",
}

// uploadRequest is the JSON body of POST /upload_image.
type uploadRequest struct {
	Image string `json:"image"`
}

// measureResponse is the success payload of both upload surfaces.
type measureResponse struct {
	Message    string                  `json:"message"`
	FootSizeCM float64                 `json:"foot_size_cm"`
	Detail     *measure.Measurement    `json:"detail,omitempty"`
	Overlay    *annotate.OverlayResult `json:"overlay,omitempty"`
}

// handleUploadImage processes the original data-URI upload contract:
// a JSON body carrying a base64 PNG/JPEG data URI.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Image == "" {
		respondError(w, "No image provided", http.StatusBadRequest)
		return
	}

	ext, ok := allowedType(req.Image)
	if !ok {
		respondError(w, "Image type not allowed; only PNG or JPEG are accepted", http.StatusBadRequest)
		return
	}

	payload := req.Image
	if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		respondError(w, "Invalid base64 image data", http.StatusBadRequest)
		return
	}

	s.persist(data, ext)
	s.measureAndRespond(w, r, data)
}

// handleMeasure processes multipart uploads with a "file" part.
func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	s.persist(data, ".png")
	s.measureAndRespond(w, r, data)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// measureAndRespond runs the pipeline and maps its terminal outcomes
// onto HTTP statuses.
func (s *Server) measureAndRespond(w http.ResponseWriter, r *http.Request, data []byte) {
	debug := r.URL.Query().Get("debug") == "1"

	var (
		m       *measure.Measurement
		overlay *annotate.OverlayResult
		err     error
	)
	if debug {
		m, overlay, err = s.pipe.MeasureAnnotated(data)
	} else {
		m, err = s.pipe.Measure(data)
	}

	switch {
	case err == nil:
		respondJSON(w, measureResponse{
			Message:    "Image processed successfully",
			FootSizeCM: m.Length,
			Detail:     m,
			Overlay:    overlay,
		}, http.StatusOK)
	case errors.Is(err, pipeline.ErrNoObject):
		respondError(w, "Could not detect a foot in the image", http.StatusUnprocessableEntity)
	case errors.Is(err, pipeline.ErrDecode), errors.Is(err, pipeline.ErrInvalidImage):
		respondError(w, "Image could not be decoded", http.StatusBadRequest)
	default:
		log.Printf("measurement failed: %v", err)
		respondError(w, "Error processing the image", http.StatusInternalServerError)
	}
}

// persist saves the raw upload when a store is configured. Persistence
// failures are logged and do not fail the request; the measurement is
// the product, the file is an audit artifact.
func (s *Server) persist(data []byte, ext string) {
	if s.uploads == nil {
		return
	}
	path, err := s.uploads.Save(data, ext)
	if err != nil {
		log.Printf("failed to persist upload: %v", err)
		return
	}
	log.Printf("upload saved to %s", path)
}

// allowedType checks the data-URI prefix against the allowlist and
// returns the file extension to persist under.
func allowedType(dataURI string) (ext string, ok bool) {
	for prefix, e := range allowedDataURIPrefixes {
		if strings.HasPrefix(dataURI, prefix) {
			return e, true
		}
	}
	return "", false
}

func respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"message": message}, status)
}
