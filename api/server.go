package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"farmportal.app/config"
	portalerr "farmportal.app/errors"
	"farmportal.app/models"
	"farmportal.app/providers"
	"farmportal.app/render"
	"farmportal.app/service"
	"farmportal.app/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerOptions groups the dependencies needed to build a Server
type ServerOptions struct {
	Config          *config.Config
	SessionService  service.SessionServiceInterface
	AdvisoryService service.AdvisoryServiceInterface
	EcoService      service.EcoAdviceServiceInterface
	LeafProvider    providers.LeafProvider
	AlertProvider   providers.AlertProvider
	ChatbotProvider providers.ChatbotProvider
}

// Server represents the HTTP server and API handler
type Server struct {
	router          *gin.Engine
	config          *config.Config
	sessionService  service.SessionServiceInterface
	advisoryService service.AdvisoryServiceInterface
	ecoService      service.EcoAdviceServiceInterface
	leafProvider    providers.LeafProvider
	alertProvider   providers.AlertProvider
	chatbotProvider providers.ChatbotProvider
}

// NewServer creates and configures a new HTTP server
func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Config == nil {
		return nil, portalerr.NewConfigurationError("server requires a configuration", nil)
	}
	if opts.SessionService == nil || opts.AdvisoryService == nil {
		return nil, portalerr.NewConfigurationError("server requires session and advisory services", nil)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     opts.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	server := &Server{
		router:          router,
		config:          opts.Config,
		sessionService:  opts.SessionService,
		advisoryService: opts.AdvisoryService,
		ecoService:      opts.EcoService,
		leafProvider:    opts.LeafProvider,
		alertProvider:   opts.AlertProvider,
		chatbotProvider: opts.ChatbotProvider,
	}

	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/auth/login", s.login)
		api.POST("/auth/register", s.register)
		api.GET("/auth/me", s.currentFarmer)
		api.POST("/auth/logout", s.logout)

		api.POST("/advisory", s.getAdvisory)
		api.GET("/history", s.getHistory)

		api.POST("/crop-advice", s.getEcoAdvice)
		api.POST("/leaf-disease", s.detectLeafDisease)
		api.POST("/weather-alert", s.subscribeWeatherAlert)
		api.POST("/chatbot", s.askChatbot)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// credentialToken reads the farmer credential from the session cookie.
// Absent or unreadable cookies yield an empty token, never an error.
func (s *Server) credentialToken(c *gin.Context) string {
	token, err := c.Cookie(s.config.Session.CookieName)
	if err != nil {
		return ""
	}
	return token
}

func (s *Server) setCredentialCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		s.config.Session.CookieName,
		token,
		s.config.Session.CookieMaxAge,
		"/",
		"",
		s.config.Session.CookieSecure,
		true,
	)
}

func (s *Server) clearCredentialCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.config.Session.CookieName, "", -1, "/", "", s.config.Session.CookieSecure, true)
}

func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, portalerr.NewValidationError("email and password are required"))
		return
	}

	sess, err := s.sessionService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("Login error", "error", err, "email", req.Email)
		s.handleError(c, err)
		return
	}

	s.setCredentialCookie(c, sess.Token())
	slog.Debug("Farmer logged in", "email", req.Email)
	c.JSON(http.StatusOK, sess.Profile())
}

func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, portalerr.NewValidationError("name, email and password are required"))
		return
	}

	sess, err := s.sessionService.Register(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Registration error", "error", err, "email", req.Email)
		s.handleError(c, err)
		return
	}

	s.setCredentialCookie(c, sess.Token())
	slog.Debug("Farmer registered", "email", req.Email)
	c.JSON(http.StatusCreated, sess.Profile())
}

func (s *Server) currentFarmer(c *gin.Context) {
	token := s.credentialToken(c)
	if token == "" {
		s.handleError(c, portalerr.NewAuthError("not logged in"))
		return
	}

	sess := s.sessionService.Restore(c.Request.Context(), token)
	if !sess.Authenticated() {
		// Stored credential was rejected upstream; discard it
		s.clearCredentialCookie(c)
		s.handleError(c, portalerr.NewAuthError("session expired"))
		return
	}

	c.JSON(http.StatusOK, sess.Profile())
}

func (s *Server) logout(c *gin.Context) {
	sess := session.FromToken(s.credentialToken(c))
	s.sessionService.Logout(sess)
	s.clearCredentialCookie(c)

	slog.Debug("Farmer logged out")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// advisoryForm carries the raw form values; defaulting and validation
// happen in the advisory service. SowingMonth binds as json.Number because
// the frontend posts it as a JSON number.
type advisoryForm struct {
	SoilType    string      `json:"soilType" form:"soilType"`
	Location    string      `json:"location" form:"location"`
	SowingMonth json.Number `json:"sowingMonth" form:"sowingMonth"`
}

func (s *Server) getAdvisory(c *gin.Context) {
	var form advisoryForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, portalerr.NewValidationError("invalid request format"))
		return
	}

	payload, err := s.advisoryService.BuildPayload(form.SoilType, form.Location, form.SowingMonth.String())
	if err != nil {
		s.handleError(c, err)
		return
	}

	sess := session.FromToken(s.credentialToken(c))
	result, err := s.advisoryService.GetAdvisory(c.Request.Context(), sess, payload)
	if err != nil {
		slog.Error("Advisory error", "error", err, "soilType", payload.SoilType)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"view":   render.BuildAdvisoryView(result),
	})
}

func (s *Server) getHistory(c *gin.Context) {
	sess := session.FromToken(s.credentialToken(c))

	entries, err := s.advisoryService.FetchHistory(c.Request.Context(), sess)
	if err != nil {
		slog.Error("History error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) getEcoAdvice(c *gin.Context) {
	var req models.EcoAdviceRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, portalerr.NewValidationError("crop name is required"))
		return
	}

	advice, err := s.ecoService.GetAdvice(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Eco advice error", "error", err, "crop", req.CropName)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, advice)
}

func (s *Server) detectLeafDisease(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.handleError(c, portalerr.NewValidationError("leaf image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.handleError(c, portalerr.NewValidationError("could not read uploaded file"))
		return
	}
	defer file.Close()

	diagnosis, err := s.leafProvider.DetectDisease(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		slog.Error("Leaf disease detection error", "error", err, "filename", fileHeader.Filename)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, diagnosis)
}

func (s *Server) subscribeWeatherAlert(c *gin.Context) {
	var req models.AlertSubscriptionRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, portalerr.NewValidationError("a valid email is required"))
		return
	}

	if err := s.alertProvider.Subscribe(c.Request.Context(), req.Email, req.City); err != nil {
		slog.Error("Weather alert subscription error", "error", err, "email", req.Email)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed to weather alerts"})
}

func (s *Server) askChatbot(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, portalerr.NewValidationError("message cannot be empty"))
		return
	}

	reply, err := s.chatbotProvider.Ask(c.Request.Context(), req.Message)
	if err != nil {
		slog.Error("Chatbot error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *portalerr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case portalerr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case portalerr.AuthError:
			statusCode = http.StatusUnauthorized
			message = appErr.Message
		case portalerr.NetworkError:
			statusCode = http.StatusServiceUnavailable
			message = "Upstream service unreachable"
		case portalerr.ServerError:
			statusCode = http.StatusBadGateway
			// Surface the upstream's own message when it sent one
			message = appErr.Message
			if message == "" {
				message = "Upstream service error"
			}
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
