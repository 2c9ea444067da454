package voyage_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"voyage/internal/entities"
	"voyage/internal/generated/dto"
	"voyage/internal/pkg/isotime"
	"voyage/internal/service/voyage"
	"voyage/pkg/logger"
)

const createdMessage = "Voyage created"

type Handler struct {
	log        handlerLogger
	service    Service
	validate   *validator.Validate
	translator ut.Translator
}

func New(log handlerLogger, service Service) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// пути в ответе должны совпадать с именами полей на проводе
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		service:    service,
		validate:   validate,
		translator: translator,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.VoyageCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// серверная валидация не доверяет клиентской и повторяет схему
	issues := h.validateRequest(createDTO)
	if len(issues) > 0 {
		h.writeIssues(w, issues)
		return
	}

	departure, err := isotime.Parse(createDTO.ScheduledDeparture)
	if err != nil {
		h.writeIssues(w, []dto.ValidationIssue{{
			Path:    "scheduledDeparture",
			Message: "scheduledDeparture must be a valid ISO-8601 timestamp",
		}})
		return
	}
	arrival, err := isotime.Parse(createDTO.ScheduledArrival)
	if err != nil {
		h.writeIssues(w, []dto.ValidationIssue{{
			Path:    "scheduledArrival",
			Message: "scheduledArrival must be a valid ISO-8601 timestamp",
		}})
		return
	}

	portOfLoading := entities.PortCode(createDTO.PortOfLoading)
	portOfDischarge := entities.PortCode(createDTO.PortOfDischarge)

	voyageModify := entities.VoyageModify{
		PortOfLoading:      &portOfLoading,
		PortOfDischarge:    &portOfDischarge,
		VesselID:           &createDTO.VesselId,
		ScheduledDeparture: &departure,
		ScheduledArrival:   &arrival,
		UnitTypeIDs:        createDTO.UnitTypes,
	}

	_, err = h.service.CreateVoyage(r.Context(), voyageModify)
	if err != nil {
		switch {
		case errors.Is(err, voyage.ErrSamePorts):
			h.writeIssues(w, []dto.ValidationIssue{{
				Path:    "portOfDischarge",
				Message: "portOfDischarge must differ from portOfLoading",
			}})
		case errors.Is(err, voyage.ErrMissingRequiredFields),
			errors.Is(err, voyage.ErrInvalidPort):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, voyage.ErrUnknownVessel),
			errors.Is(err, voyage.ErrUnknownUnitType):
			h.writeError(w, http.StatusInternalServerError, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.VoyageCreateResponse{Message: createdMessage})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) validateRequest(createDTO dto.VoyageCreateRequest) []dto.ValidationIssue {
	err := h.validate.Struct(createDTO)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []dto.ValidationIssue{{Path: "body", Message: err.Error()}}
	}

	issues := make([]dto.ValidationIssue, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		issues = append(issues, dto.ValidationIssue{
			Path:    fieldError.Field(),
			Message: fieldError.Translate(h.translator),
		})
	}
	return issues
}

func (h *Handler) writeIssues(w http.ResponseWriter, issues []dto.ValidationIssue) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(issues)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
