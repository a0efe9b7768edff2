package binder

import (
	"encoding/json"
	"net/http"

	"github.com/validtree/validtree"
	"github.com/validtree/validtree/pkg/errtree"
	"github.com/validtree/validtree/pkg/logger"
)

// ErrorResponse is the JSON body written for every rejected request.
type ErrorResponse struct {
	Errors []errtree.Flat `json:"errors"`
}

// genericBodyMessage hides decoder and bind internals from clients. The
// precise cause still reaches the logs.
const genericBodyMessage = "invalid request body"

// WriteError renders a bind failure as a 400 response with a flat errors
// array. Validation messages are localized per Accept-Language when the
// binder carries a translator; decode and bind causes collapse to a generic
// root message. Non-pipeline errors become a 500.
func (b *Binder[T]) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	pe, ok := validtree.AsError(err)
	if !ok {
		b.logger.Error("unexpected bind error", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Errors: []errtree.Flat{{Path: "", Message: "internal server error"}},
		})
		return
	}

	var flat []errtree.Flat
	switch pe.Kind {
	case validtree.KindValidation:
		flat = b.localizedFlat(r, pe.Tree)
	case validtree.KindSchema:
		flat = pe.Flatten()
	case validtree.KindBind:
		b.logger.Error("bind failed after schema pre-validation passed", logger.Error(pe.Cause))
		flat = []errtree.Flat{{Path: "", Message: genericBodyMessage}}
	default:
		b.logger.Debug("request body rejected", logger.Stage(pe.Kind.String()), logger.Error(pe.Cause))
		flat = []errtree.Flat{{Path: "", Message: genericBodyMessage}}
	}

	writeJSON(w, http.StatusBadRequest, ErrorResponse{Errors: flat})
}

func (b *Binder[T]) localizedFlat(r *http.Request, tree *errtree.Errors) []errtree.Flat {
	if b.translator == nil || tree == nil {
		return tree.Flatten()
	}
	lang := b.matcher.Match(r.Header.Get("Accept-Language"))
	return tree.Localize(b.translator, lang).Flatten()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
