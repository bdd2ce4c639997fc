package server

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/bokysan/emojicode/internal/util/enc"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrorResponse is the JSON body of failed requests. Codepoint and Index are only set when the input
// contained a symbol which is not part of the alphabet.
type ErrorResponse struct {
	Error     string `json:"error"`
	Codepoint string `json:"codepoint,omitempty"`
	Index     *int   `json:"index,omitempty"`
}

func NewErrorResponse(err error) *ErrorResponse {
	res := &ErrorResponse{
		Error: err.Error(),
	}
	if de, ok := enc.AsDecodeError(err); ok {
		index := de.Index
		res.Codepoint = string(de.Codepoint)
		res.Index = &index
	}
	return res
}

// AlphabetResponse lists all the symbols of an alphabet, in byte order
type AlphabetResponse struct {
	Name    string   `json:"name"`
	Code    string   `json:"code"`
	Symbols []string `json:"symbols"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warnf("Could not write the response: %v", err)
	}
}

// codecFromRequest finds the alphabet named in the URL, or writes 404 and returns nil.
func codecFromRequest(w http.ResponseWriter, r *http.Request) *enc.Codec {
	codec, err := enc.AlphabetFromName(chi.URLParam(r, "alphabet"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, NewErrorResponse(err))
		return nil
	}
	return codec
}

func (ws *HttpServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, ws.MaxBodySize))
	if err != nil {
		status := http.StatusBadRequest
		if errors.As(err, new(*http.MaxBytesError)) {
			status = http.StatusRequestEntityTooLarge
		}
		log.WithError(err).Debugf("Could not read the request: %v", err)
		writeJSON(w, status, NewErrorResponse(fmt.Errorf("could not read the request: %v", err)))
		return nil, false
	}
	return body, true
}

func (ws *HttpServer) handleEncode(w http.ResponseWriter, r *http.Request) {
	codec := codecFromRequest(w, r)
	if codec == nil {
		return
	}
	body, ok := ws.readBody(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, codec.Encode(body)); err != nil {
		log.WithError(err).Warnf("Could not write the response: %v", err)
	}
}

func (ws *HttpServer) handleDecode(w http.ResponseWriter, r *http.Request) {
	codec := codecFromRequest(w, r)
	if codec == nil {
		return
	}
	body, ok := ws.readBody(w, r)
	if !ok {
		return
	}

	data, err := codec.Decode(strings.TrimRight(string(body), "\r\n"))
	if err != nil {
		log.WithError(err).Debugf("Could not decode the request: %v", err)
		writeJSON(w, http.StatusUnprocessableEntity, NewErrorResponse(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warnf("Could not write the response: %v", err)
	}
}

func (ws *HttpServer) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	codec := codecFromRequest(w, r)
	if codec == nil {
		return
	}

	res := &AlphabetResponse{
		Name:    codec.Name(),
		Code:    string(codec.Code()),
		Symbols: make([]string, 0, enc.AlphabetSize),
	}
	for _, s := range enc.Symbols(codec.Alphabet()) {
		res.Symbols = append(res.Symbols, string(s))
	}
	writeJSON(w, http.StatusOK, res)
}
