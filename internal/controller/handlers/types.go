package handlers

import (
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/state"
	"github.com/tutorgram/enquiry_bot/internal/service"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	authService    *service.AuthService
	enquiryService *service.EnquiryService
	demoService    *service.DemoService
	stateManager   *state.Manager
	logger         *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	authService *service.AuthService,
	enquiryService *service.EnquiryService,
	demoService *service.DemoService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		authService:    authService,
		enquiryService: enquiryService,
		demoService:    demoService,
		stateManager:   stateManager,
		logger:         logger,
	}
}
