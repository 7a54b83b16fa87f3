package response

import (
	"encoding/json"
	"errors"
	"medreminder/internal/core/domain/medication"
	ratelimiter "medreminder/internal/core/domain/rate_limiter"
	"net/http"
)

// User-facing texts.
const (
	MsgFieldsRequired        = "Por favor, preencha todos os campos."
	MsgInvalidInterval       = "Por favor, insira um intervalo válido no formato HH:MM."
	MsgSaveFailed            = "Não foi possível salvar o medicamento."
	MsgSaved                 = "Medicamento adicionado com sucesso!"
	MsgNoMedications         = "Nenhum medicamento adicionado ainda."
	MsgRemoved               = "Medicamento removido com sucesso!"
	MsgRemoveFailed          = "Não foi possível remover o medicamento."
	MsgListFailed            = "Não foi possível carregar os medicamentos."
	MsgPermissionRequired    = "Você precisa conceder permissão para notificações."
	MsgPermissionCheckFailed = "Não foi possível verificar a permissão para notificações."
	MsgRateLimitExceeded     = "Muitas tentativas. Aguarde um momento e tente novamente."
	MsgInvalidRequest        = "Dados da requisição inválidos."
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// RenderServiceError maps errors of the medication use cases to a status and
// a user-facing text. Anything unexpected is rendered as 500 with fallback.
func RenderServiceError(rw http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, medication.ErrFieldsRequired):
		RenderError(rw, MsgFieldsRequired, http.StatusBadRequest)
	case errors.Is(err, medication.ErrInvalidInterval):
		RenderError(rw, MsgInvalidInterval, http.StatusBadRequest)
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		RenderError(rw, MsgRateLimitExceeded, http.StatusTooManyRequests)
	default:
		RenderError(rw, fallback, http.StatusInternalServerError)
	}
}

func RenderMessage(rw http.ResponseWriter, msg string, status int) {
	Render(rw, messageResponse{Message: msg}, status)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
